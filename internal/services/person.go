package services

import (
	"errors"
	"fmt"

	"github.com/yungbote/person-api/internal/data/repos"
	"github.com/yungbote/person-api/internal/domain/failure"
	"github.com/yungbote/person-api/internal/domain/person"
	"github.com/yungbote/person-api/internal/platform/ctxutil"
	"github.com/yungbote/person-api/internal/platform/dbctx"
	"github.com/yungbote/person-api/internal/platform/logger"
)

// PersonService owns the person lifecycle. Expected outcomes are reported as
// *failure.NotFound and *failure.ValidationFailed; any other error is a storage failure.
type PersonService interface {
	ListPeople(dbc dbctx.Context) ([]*person.Person, error)
	GetPerson(dbc dbctx.Context, id uint) (*person.Person, error)
	CreatePerson(dbc dbctx.Context, data *person.Person) (*person.Person, error)
	// UpdatePerson replaces the names and the whole address set.
	UpdatePerson(dbc dbctx.Context, id uint, data *person.Person) (*person.Person, error)
	DeletePerson(dbc dbctx.Context, id uint) error
	CountPeople(dbc dbctx.Context) (int64, error)
}

type personService struct {
	log        *logger.Logger
	personRepo repos.PersonRepo
}

func NewPersonService(baseLog *logger.Logger, personRepo repos.PersonRepo) PersonService {
	serviceLog := baseLog.With("service", "PersonService")
	return &personService{
		log:        serviceLog,
		personRepo: personRepo,
	}
}

func (ps *personService) ListPeople(dbc dbctx.Context) ([]*person.Person, error) {
	people, err := ps.personRepo.List(dbc.Context(), dbc.Tx)
	if err != nil {
		ps.log.Warn("ListPeople: storage failure", withTrace(dbc, "error", err)...)
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

func (ps *personService) GetPerson(dbc dbctx.Context, id uint) (*person.Person, error) {
	p, err := ps.personRepo.GetByID(dbc.Context(), dbc.Tx, id)
	if err != nil {
		ps.log.Warn("GetPerson: storage failure", withTrace(dbc, "person_id", id, "error", err)...)
		return nil, fmt.Errorf("get person: %w", err)
	}
	if p == nil {
		ps.log.Debug("GetPerson: not found", withTrace(dbc, "person_id", id)...)
		return nil, failure.PersonNotFound(id)
	}
	return p, nil
}

func (ps *personService) CreatePerson(dbc dbctx.Context, data *person.Person) (*person.Person, error) {
	if err := person.ValidatePerson(data); err != nil {
		return nil, err
	}
	created, err := ps.personRepo.Create(dbc.Context(), dbc.Tx, data)
	if err != nil {
		ps.log.Warn("CreatePerson: storage failure", withTrace(dbc, "error", err)...)
		return nil, fmt.Errorf("create person: %w", err)
	}
	ps.log.Info("Person created", withTrace(dbc, "person_id", created.ID, "addresses", len(created.Addresses))...)
	return created, nil
}

func (ps *personService) UpdatePerson(dbc dbctx.Context, id uint, data *person.Person) (*person.Person, error) {
	if err := person.ValidatePerson(data); err != nil {
		return nil, err
	}
	if _, err := ps.GetPerson(dbc, id); err != nil {
		return nil, err
	}

	replacement := &person.Person{
		ID:        id,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Addresses: data.Addresses,
	}
	updated, err := ps.personRepo.Replace(dbc.Context(), dbc.Tx, replacement)
	if err != nil {
		if errors.Is(err, repos.ErrOwnerMissing) {
			ps.log.Debug("UpdatePerson: person removed before replace", withTrace(dbc, "person_id", id)...)
			return nil, failure.PersonNotFound(id)
		}
		ps.log.Warn("UpdatePerson: storage failure", withTrace(dbc, "person_id", id, "error", err)...)
		return nil, fmt.Errorf("update person: %w", err)
	}
	return updated, nil
}

func (ps *personService) DeletePerson(dbc dbctx.Context, id uint) error {
	if _, err := ps.GetPerson(dbc, id); err != nil {
		return err
	}
	if err := ps.personRepo.Delete(dbc.Context(), dbc.Tx, id); err != nil {
		ps.log.Warn("DeletePerson: storage failure", withTrace(dbc, "person_id", id, "error", err)...)
		return fmt.Errorf("delete person: %w", err)
	}
	ps.log.Info("Person deleted", withTrace(dbc, "person_id", id)...)
	return nil
}

func (ps *personService) CountPeople(dbc dbctx.Context) (int64, error) {
	n, err := ps.personRepo.Count(dbc.Context(), dbc.Tx)
	if err != nil {
		ps.log.Warn("CountPeople: storage failure", withTrace(dbc, "error", err)...)
		return 0, fmt.Errorf("count people: %w", err)
	}
	return n, nil
}

// withTrace prefixes kv with the request's trace/request ids when present.
func withTrace(dbc dbctx.Context, kv ...interface{}) []interface{} {
	return append(ctxutil.LogFields(dbc.Context()), kv...)
}
