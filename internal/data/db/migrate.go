package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/domain/person"
)

// AutoMigrateAll creates or updates the person and address tables. The
// address.person_id foreign key carries ON DELETE CASCADE.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&person.Person{},
		&person.Address{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
