package people

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/platform/logger"
)

// PersonRepo is the person side of the storage gateway. Lookups return a nil
// record and no error when nothing matches.
type PersonRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*person.Person, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*person.Person, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, p *person.Person) (*person.Person, error)
	// Replace overwrites the names and the entire address set of p.ID.
	Replace(ctx context.Context, tx *gorm.DB, p *person.Person) (*person.Person, error)
	// Delete removes the person and every address it owns.
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type personRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	repoLog := baseLog.With("repo", "PersonRepo")
	return &personRepo{db: db, log: repoLog}
}

func preloadAddresses(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (pr *personRepo) List(ctx context.Context, tx *gorm.DB) ([]*person.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	results := []*person.Person{}
	if err := transaction.WithContext(ctx).
		Preload("Addresses", preloadAddresses).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *personRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*person.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*person.Person
	if err := transaction.WithContext(ctx).
		Preload("Addresses", preloadAddresses).
		Where("id = ?", id).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *personRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&person.Person{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (pr *personRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&person.Person{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (pr *personRepo) Create(ctx context.Context, tx *gorm.DB, p *person.Person) (*person.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	row := &person.Person{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Addresses: person.DetachedAddresses(p.Addresses, 0),
	}
	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (pr *personRepo) Replace(ctx context.Context, tx *gorm.DB, p *person.Person) (*person.Person, error) {
	var out *person.Person
	err := pr.inTx(ctx, tx, func(t *gorm.DB) error {
		if err := t.Model(&person.Person{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"first_name": p.FirstName,
				"last_name":  p.LastName,
			}).Error; err != nil {
			return err
		}
		if err := t.Where("person_id = ?", p.ID).Delete(&person.Address{}).Error; err != nil {
			return err
		}
		addrs := person.DetachedAddresses(p.Addresses, p.ID)
		if len(addrs) > 0 {
			if err := t.Create(&addrs).Error; err != nil {
				err = mapWriteError(err)
				if errors.Is(err, ErrOwnerMissing) {
					pr.log.Debug("Replace: person row gone before address insert", "person_id", p.ID)
				}
				return err
			}
		}
		out = &person.Person{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Addresses: addrs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (pr *personRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return pr.inTx(ctx, tx, func(t *gorm.DB) error {
		if err := t.Where("person_id = ?", id).Delete(&person.Address{}).Error; err != nil {
			return err
		}
		return t.Where("id = ?", id).Delete(&person.Person{}).Error
	})
}

// inTx runs fn on the caller's transaction when one is supplied, otherwise in a
// fresh transaction so multi-statement writes stay atomic.
func (pr *personRepo) inTx(ctx context.Context, tx *gorm.DB, fn func(t *gorm.DB) error) error {
	if tx != nil {
		return fn(tx.WithContext(ctx))
	}
	return pr.db.WithContext(ctx).Transaction(fn)
}
