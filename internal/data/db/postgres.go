package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/person-api/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the connection URL; the password is escaped.
func (c PostgresConfig) DSN() string {
	sslMode := strings.TrimSpace(c.SSLMode)
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

type Config struct {
	Driver     string
	SQLitePath string
	Postgres   PostgresConfig
}

// Service owns the gorm handle for the configured driver.
type Service struct {
	db     *gorm.DB
	log    *logger.Logger
	driver string
}

// Open connects to the storage selected by cfg.Driver.
func Open(cfg Config, logg *logger.Logger) (*Service, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverPostgres:
		return NewPostgresService(cfg.Postgres, logg)
	case DriverSQLite:
		return NewSQLiteService(cfg.SQLitePath, logg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func NewPostgresService(cfg PostgresConfig, logg *logger.Logger) (*Service, error) {
	logg.Info("Connecting to Postgres...", "host", cfg.Host, "port", cfg.Port, "name", cfg.Name)
	return NewPostgresServiceFromDSN(cfg.DSN(), logg)
}

func NewPostgresServiceFromDSN(dsn string, logg *logger.Logger) (*Service, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logg, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return &Service{db: db, log: logg.With("service", "PostgresService"), driver: DriverPostgres}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Driver() string { return s.driver }

func (s *Service) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Service) Close() error {
	s.log.Info("Closing database connection", "driver", s.driver)
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
