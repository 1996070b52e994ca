package people

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/person-api/internal/data/repos/testutil"
	"github.com/yungbote/person-api/internal/domain/person"
)

func TestPersonRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("Count: expected 0, got %d", count)
	}

	created, err := repo.Create(ctx, nil, &person.Person{
		ID:        99,
		FirstName: "Jane",
		LastName:  "Doe",
		Addresses: []person.Address{{ID: 5, PersonID: 77, Street: "1 Main", City: "X", State: "Y", PostalCode: "00000"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.ID == 99 {
		t.Fatalf("Create: expected storage-assigned id, got %d", created.ID)
	}
	if len(created.Addresses) != 1 || created.Addresses[0].PersonID != created.ID {
		t.Fatalf("Create: address not owned by new person: %+v", created.Addresses)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.FirstName != "Jane" || len(got.Addresses) != 1 {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(ctx, nil, created.ID+100)
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}

	exists, err := repo.Exists(ctx, nil, created.ID)
	if err != nil || !exists {
		t.Fatalf("Exists: expected true, got %v (%v)", exists, err)
	}
	exists, err = repo.Exists(ctx, nil, created.ID+100)
	if err != nil || exists {
		t.Fatalf("Exists (missing): expected false, got %v (%v)", exists, err)
	}

	list, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || len(list[0].Addresses) != 1 {
		t.Fatalf("List: unexpected result: %+v", list)
	}
}

func TestPersonRepoReplaceSwapsAddressSet(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPerson(t, ctx, db, "Jane", "Doe")
	old := testutil.SeedAddress(t, ctx, db, p.ID, "old street")

	updated, err := repo.Replace(ctx, nil, &person.Person{
		ID:        p.ID,
		FirstName: "Janet",
		LastName:  "Roe",
		Addresses: []person.Address{
			{ID: old.ID, Street: "a", City: "b", State: "c", PostalCode: "d"},
			{Street: "e", City: "f", State: "g", PostalCode: "h"},
		},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if updated.FirstName != "Janet" || len(updated.Addresses) != 2 {
		t.Fatalf("Replace: unexpected result: %+v", updated)
	}

	got, err := repo.GetByID(ctx, nil, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LastName != "Roe" || len(got.Addresses) != 2 {
		t.Fatalf("GetByID after Replace: %+v", got)
	}
	for _, a := range got.Addresses {
		if a.ID == old.ID {
			t.Fatalf("old address row %d should have been replaced", old.ID)
		}
	}

	if _, err := repo.Replace(ctx, nil, &person.Person{ID: p.ID, FirstName: "Janet", LastName: "Roe"}); err != nil {
		t.Fatalf("Replace (empty set): %v", err)
	}
	if n := testutil.CountAddresses(t, ctx, db, p.ID); n != 0 {
		t.Fatalf("expected empty address set, got %d", n)
	}
}

func TestPersonRepoDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))
	ctx := context.Background()

	p := testutil.SeedPerson(t, ctx, db, "Jane", "Doe")
	testutil.SeedAddress(t, ctx, db, p.ID, "a")
	testutil.SeedAddress(t, ctx, db, p.ID, "b")
	other := testutil.SeedPerson(t, ctx, db, "John", "Roe")
	testutil.SeedAddress(t, ctx, db, other.ID, "c")

	if err := repo.Delete(ctx, nil, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := testutil.CountAddresses(t, ctx, db, p.ID); n != 0 {
		t.Fatalf("expected owned addresses removed, got %d", n)
	}
	if n := testutil.CountAddresses(t, ctx, db, other.ID); n != 1 {
		t.Fatalf("other person's addresses must survive, got %d", n)
	}
	if exists, _ := repo.Exists(ctx, nil, p.ID); exists {
		t.Fatalf("person should be gone")
	}
}

func TestPersonRepoReplaceMissingPerson(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))

	_, err := repo.Replace(context.Background(), nil, &person.Person{
		ID:        4242,
		FirstName: "Ghost",
		LastName:  "Row",
		Addresses: []person.Address{{Street: "1 Main", City: "X", State: "Y", PostalCode: "00000"}},
	})
	if !errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("expected ErrOwnerMissing, got %v", err)
	}
}
