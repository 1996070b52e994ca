package people

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/platform/logger"
)

// AddressRepo is the address side of the storage gateway. Lookups return a nil
// record and no error when nothing matches.
type AddressRepo interface {
	ListByPersonID(ctx context.Context, tx *gorm.DB, personID uint) ([]*person.Address, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*person.Address, error)
	GetByIDAndPersonID(ctx context.Context, tx *gorm.DB, id, personID uint) (*person.Address, error)
	Create(ctx context.Context, tx *gorm.DB, a *person.Address) (*person.Address, error)
	// UpdateFields writes street, city, state and postal code; the owner column is never touched.
	UpdateFields(ctx context.Context, tx *gorm.DB, a *person.Address) (*person.Address, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type addressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	repoLog := baseLog.With("repo", "AddressRepo")
	return &addressRepo{db: db, log: repoLog}
}

func (ar *addressRepo) ListByPersonID(ctx context.Context, tx *gorm.DB, personID uint) ([]*person.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	results := []*person.Address{}
	if err := transaction.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *addressRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*person.Address, error) {
	return ar.first(ctx, tx, "id = ?", id)
}

func (ar *addressRepo) GetByIDAndPersonID(ctx context.Context, tx *gorm.DB, id, personID uint) (*person.Address, error) {
	return ar.first(ctx, tx, "id = ? AND person_id = ?", id, personID)
}

func (ar *addressRepo) first(ctx context.Context, tx *gorm.DB, query string, args ...any) (*person.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*person.Address
	if err := transaction.WithContext(ctx).
		Where(query, args...).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ar *addressRepo) Create(ctx context.Context, tx *gorm.DB, a *person.Address) (*person.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	row := &person.Address{PersonID: a.PersonID}
	row.ApplyFields(*a)
	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		err = mapWriteError(err)
		if errors.Is(err, ErrOwnerMissing) {
			ar.log.Debug("Create: owning person missing", "person_id", a.PersonID)
		}
		return nil, err
	}
	return row, nil
}

func (ar *addressRepo) UpdateFields(ctx context.Context, tx *gorm.DB, a *person.Address) (*person.Address, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).
		Model(&person.Address{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"street":      a.Street,
			"city":        a.City,
			"state":       a.State,
			"postal_code": a.PostalCode,
		}).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (ar *addressRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&person.Address{}).Error
}
