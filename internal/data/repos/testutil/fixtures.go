package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/domain/person"
)

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, firstName, lastName string) *person.Person {
	tb.Helper()
	p := &person.Person{FirstName: firstName, LastName: lastName}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func SeedAddress(tb testing.TB, ctx context.Context, tx *gorm.DB, personID uint, street string) *person.Address {
	tb.Helper()
	a := &person.Address{
		PersonID:   personID,
		Street:     street,
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed address: %v", err)
	}
	return a
}

func CountAddresses(tb testing.TB, ctx context.Context, tx *gorm.DB, personID uint) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(&person.Address{}).Where("person_id = ?", personID).Count(&n).Error; err != nil {
		tb.Fatalf("count addresses: %v", err)
	}
	return n
}
