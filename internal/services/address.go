package services

import (
	"errors"
	"fmt"

	"github.com/yungbote/person-api/internal/data/repos"
	"github.com/yungbote/person-api/internal/domain/failure"
	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/platform/dbctx"
	"github.com/yungbote/person-api/internal/platform/logger"
)

// AddressService manages addresses under their owning person.
type AddressService interface {
	ListAddresses(dbc dbctx.Context, personID uint) ([]*person.Address, error)
	CreateAddress(dbc dbctx.Context, personID uint, data *person.Address) (*person.Address, error)
	// UpdateAddress overwrites street, city, state and postal code. The address is
	// looked up by addressID alone; personID is only checked for existence.
	UpdateAddress(dbc dbctx.Context, personID, addressID uint, data *person.Address) (*person.Address, error)
	DeleteAddress(dbc dbctx.Context, addressID, personID uint) error
}

type addressService struct {
	log         *logger.Logger
	personRepo  repos.PersonRepo
	addressRepo repos.AddressRepo
}

func NewAddressService(baseLog *logger.Logger, personRepo repos.PersonRepo, addressRepo repos.AddressRepo) AddressService {
	serviceLog := baseLog.With("service", "AddressService")
	return &addressService{
		log:         serviceLog,
		personRepo:  personRepo,
		addressRepo: addressRepo,
	}
}

func (as *addressService) ListAddresses(dbc dbctx.Context, personID uint) ([]*person.Address, error) {
	if err := as.requirePerson(dbc, personID); err != nil {
		return nil, err
	}
	addrs, err := as.addressRepo.ListByPersonID(dbc.Context(), dbc.Tx, personID)
	if err != nil {
		as.log.Warn("ListAddresses: storage failure", withTrace(dbc, "person_id", personID, "error", err)...)
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addrs, nil
}

func (as *addressService) CreateAddress(dbc dbctx.Context, personID uint, data *person.Address) (*person.Address, error) {
	owner, err := as.personRepo.GetByID(dbc.Context(), dbc.Tx, personID)
	if err != nil {
		as.log.Warn("CreateAddress: storage failure loading person", withTrace(dbc, "person_id", personID, "error", err)...)
		return nil, fmt.Errorf("load person: %w", err)
	}
	if owner == nil {
		as.log.Debug("CreateAddress: person not found", withTrace(dbc, "person_id", personID)...)
		return nil, failure.PersonNotFound(personID)
	}
	if err := person.ValidateAddress(data); err != nil {
		return nil, err
	}

	row := &person.Address{PersonID: owner.ID}
	row.ApplyFields(*data)
	created, err := as.addressRepo.Create(dbc.Context(), dbc.Tx, row)
	if err != nil {
		if errors.Is(err, repos.ErrOwnerMissing) {
			as.log.Debug("CreateAddress: person removed before insert", withTrace(dbc, "person_id", personID)...)
			return nil, failure.PersonNotFound(personID)
		}
		as.log.Warn("CreateAddress: storage failure", withTrace(dbc, "person_id", personID, "error", err)...)
		return nil, fmt.Errorf("create address: %w", err)
	}
	return created, nil
}

func (as *addressService) UpdateAddress(dbc dbctx.Context, personID, addressID uint, data *person.Address) (*person.Address, error) {
	if err := as.requirePerson(dbc, personID); err != nil {
		return nil, err
	}
	// Not scoped by personID, unlike DeleteAddress.
	existing, err := as.addressRepo.GetByID(dbc.Context(), dbc.Tx, addressID)
	if err != nil {
		as.log.Warn("UpdateAddress: storage failure loading address", withTrace(dbc, "address_id", addressID, "error", err)...)
		return nil, fmt.Errorf("load address: %w", err)
	}
	if existing == nil {
		as.log.Debug("UpdateAddress: address not found", withTrace(dbc, "address_id", addressID)...)
		return nil, failure.AddressNotFound(addressID)
	}
	if err := person.ValidateAddress(data); err != nil {
		return nil, err
	}

	existing.ApplyFields(*data)
	updated, err := as.addressRepo.UpdateFields(dbc.Context(), dbc.Tx, existing)
	if err != nil {
		as.log.Warn("UpdateAddress: storage failure", withTrace(dbc, "address_id", addressID, "error", err)...)
		return nil, fmt.Errorf("update address: %w", err)
	}
	return updated, nil
}

func (as *addressService) DeleteAddress(dbc dbctx.Context, addressID, personID uint) error {
	existing, err := as.addressRepo.GetByIDAndPersonID(dbc.Context(), dbc.Tx, addressID, personID)
	if err != nil {
		as.log.Warn("DeleteAddress: storage failure loading address", withTrace(dbc, "address_id", addressID, "person_id", personID, "error", err)...)
		return fmt.Errorf("load address: %w", err)
	}
	if existing == nil {
		as.log.Debug("DeleteAddress: address not found", withTrace(dbc, "address_id", addressID, "person_id", personID)...)
		return failure.AddressNotFound(addressID)
	}
	if err := as.addressRepo.Delete(dbc.Context(), dbc.Tx, existing.ID); err != nil {
		as.log.Warn("DeleteAddress: storage failure", withTrace(dbc, "address_id", addressID, "error", err)...)
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

// requirePerson is the cheap existence probe used when the person's fields are not needed.
func (as *addressService) requirePerson(dbc dbctx.Context, personID uint) error {
	ok, err := as.personRepo.Exists(dbc.Context(), dbc.Tx, personID)
	if err != nil {
		as.log.Warn("person existence check failed", withTrace(dbc, "person_id", personID, "error", err)...)
		return fmt.Errorf("check person: %w", err)
	}
	if !ok {
		as.log.Debug("person not found", withTrace(dbc, "person_id", personID)...)
		return failure.PersonNotFound(personID)
	}
	return nil
}
