package people

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/person-api/internal/data/repos/testutil"
	"github.com/yungbote/person-api/internal/domain/person"
)

func TestAddressRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAddressRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedPerson(t, ctx, db, "Jane", "Doe")
	stranger := testutil.SeedPerson(t, ctx, db, "John", "Roe")

	empty, err := repo.ListByPersonID(ctx, nil, owner.ID)
	if err != nil {
		t.Fatalf("ListByPersonID: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("ListByPersonID: expected empty non-nil list, got %#v", empty)
	}

	created, err := repo.Create(ctx, nil, &person.Address{
		ID: 42, PersonID: owner.ID, Street: "1 Main", City: "X", State: "Y", PostalCode: "00000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.PersonID != owner.ID {
		t.Fatalf("Create: unexpected result: %+v", created)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil || got == nil || got.Street != "1 Main" {
		t.Fatalf("GetByID: %+v (%v)", got, err)
	}

	scoped, err := repo.GetByIDAndPersonID(ctx, nil, created.ID, stranger.ID)
	if err != nil {
		t.Fatalf("GetByIDAndPersonID: %v", err)
	}
	if scoped != nil {
		t.Fatalf("GetByIDAndPersonID: address must not be visible under another person")
	}
	scoped, err = repo.GetByIDAndPersonID(ctx, nil, created.ID, owner.ID)
	if err != nil || scoped == nil {
		t.Fatalf("GetByIDAndPersonID (owner): %+v (%v)", scoped, err)
	}

	// Owner in the payload is ignored by the field update.
	_, err = repo.UpdateFields(ctx, nil, &person.Address{
		ID: created.ID, PersonID: stranger.ID, Street: "2 Side", City: "Z", State: "W", PostalCode: "11111",
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, _ = repo.GetByID(ctx, nil, created.ID)
	if got.Street != "2 Side" || got.PostalCode != "11111" || got.PersonID != owner.ID {
		t.Fatalf("UpdateFields: unexpected row: %+v", got)
	}

	list, err := repo.ListByPersonID(ctx, nil, owner.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByPersonID: %+v (%v)", list, err)
	}

	if err := repo.Delete(ctx, nil, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByID(ctx, nil, created.ID)
	if err != nil || got != nil {
		t.Fatalf("GetByID after Delete: %+v (%v)", got, err)
	}
}

func TestAddressRepoCreateWithoutOwner(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAddressRepo(db, testutil.Logger(t))

	_, err := repo.Create(context.Background(), nil, &person.Address{
		PersonID: 12345, Street: "1 Main", City: "X", State: "Y", PostalCode: "00000",
	})
	if !errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("expected ErrOwnerMissing, got %v", err)
	}
}
