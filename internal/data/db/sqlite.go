package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/platform/logger"
)

// NewSQLiteService opens a SQLite database with foreign keys enforced. An empty
// path or ":memory:" yields a private in-memory database on a single connection.
func NewSQLiteService(path string, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "SQLiteService")
	path = strings.TrimSpace(path)
	memory := path == "" || path == ":memory:"
	if memory {
		path = ":memory:"
	}
	serviceLog.Info("Opening SQLite...", "path", path)

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: NewGormLogger(logg, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// Each connection to :memory: is a separate database, and SQLite serializes writers anyway.
	sqlDB.SetMaxOpenConns(1)
	if memory {
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}
	return &Service{db: db, log: serviceLog, driver: DriverSQLite}, nil
}
