package app

import (
	"github.com/yungbote/person-api/internal/platform/logger"
	"github.com/yungbote/person-api/internal/services"
)

type Services struct {
	Person  services.PersonService
	Address services.AddressService
}

func wireServices(log *logger.Logger, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Person:  services.NewPersonService(log, repos.Person),
		Address: services.NewAddressService(log, repos.Person, repos.Address),
	}
}
