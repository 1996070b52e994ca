package testutil

import (
	"os"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/data/db"
	"github.com/yungbote/person-api/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a migrated, empty database. By default every call opens a private
// in-memory SQLite database; with TEST_POSTGRES_DSN set the tests run against
// that Postgres instance and the tables are truncated first.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	if dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN")); dsn != "" {
		return postgresDB(tb, dsn)
	}

	svc, err := db.NewSQLiteService(":memory:", Logger(tb))
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })
	if err := db.AutoMigrateAll(svc.DB()); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}
	return svc.DB()
}

var (
	pgOnce sync.Once
	pgDB   *gorm.DB
	pgErr  error
)

func postgresDB(tb testing.TB, dsn string) *gorm.DB {
	tb.Helper()
	pgOnce.Do(func() {
		var svc *db.Service
		svc, pgErr = db.NewPostgresServiceFromDSN(dsn, Logger(tb))
		if pgErr != nil {
			return
		}
		pgDB = svc.DB()
		pgErr = db.AutoMigrateAll(pgDB)
	})
	if pgErr != nil {
		tb.Fatalf("failed to init test db: %v", pgErr)
	}
	if err := pgDB.Exec(`TRUNCATE TABLE "address", "person" RESTART IDENTITY CASCADE`).Error; err != nil {
		tb.Fatalf("truncate: %v", err)
	}
	return pgDB
}
