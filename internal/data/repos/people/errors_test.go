package people

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/person-api/internal/data/repos/testutil"
	"github.com/yungbote/person-api/internal/domain/person"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestMapWriteError(t *testing.T) {
	if mapWriteError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	fk := &pgconn.PgError{Code: "23503"}
	if err := mapWriteError(fk); !errors.Is(err, ErrOwnerMissing) || !errors.Is(err, fk) {
		t.Fatalf("expected ErrOwnerMissing wrapping the pg error, got %v", err)
	}
	unique := &pgconn.PgError{Code: "23505"}
	if err := mapWriteError(unique); errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("unique violation must not map to ErrOwnerMissing")
	}
	if err := mapWriteError(errors.New("FOREIGN KEY constraint failed")); !errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("sqlite foreign key failure must map to ErrOwnerMissing")
	}
}

func TestAddressCreateForeignKeyViolation(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewAddressRepo(db, testutil.Logger(t))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "address"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "insert or update on table \"address\" violates foreign key constraint"})

	_, err := repo.Create(context.Background(), nil, &person.Address{
		PersonID: 7, Street: "s", City: "c", State: "st", PostalCode: "p",
	})
	if !errors.Is(err, ErrOwnerMissing) {
		t.Fatalf("expected ErrOwnerMissing, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPersonCountPropagatesStorageFailure(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))

	boom := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "person"`)).WillReturnError(boom)

	if _, err := repo.Count(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPersonDeleteRollsBackOnFailure(t *testing.T) {
	db, mock := mockDB(t)
	repo := NewPersonRepo(db, testutil.Logger(t))

	boom := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "address"`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "person"`)).WillReturnError(boom)
	mock.ExpectRollback()

	if err := repo.Delete(context.Background(), nil, 3); !errors.Is(err, boom) {
		t.Fatalf("expected delete failure, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
