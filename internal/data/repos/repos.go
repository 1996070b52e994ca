package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/data/repos/people"
	"github.com/yungbote/person-api/internal/platform/logger"
)

type PersonRepo = people.PersonRepo
type AddressRepo = people.AddressRepo

var ErrOwnerMissing = people.ErrOwnerMissing

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return people.NewPersonRepo(db, baseLog)
}
func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return people.NewAddressRepo(db, baseLog)
}
