package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/data/repos"
	"github.com/yungbote/person-api/internal/platform/logger"
)

type Repos struct {
	Person  repos.PersonRepo
	Address repos.AddressRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Person:  repos.NewPersonRepo(db, log),
		Address: repos.NewAddressRepo(db, log),
	}
}
