package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/yungbote/person-api/internal/data/db"
)

type Config struct {
	Port     string         `koanf:"port" yaml:"port"`
	Log      LogConfig      `koanf:"log" yaml:"log"`
	Store    StoreConfig    `koanf:"store" yaml:"store"`
	Postgres PostgresConfig `koanf:"postgres" yaml:"postgres"`
	HTTP     HTTPConfig     `koanf:"http" yaml:"http"`
	Metrics  MetricsConfig  `koanf:"metrics" yaml:"metrics"`
	Otel     OtelConfig     `koanf:"otel" yaml:"otel"`
}

type LogConfig struct {
	Mode string `koanf:"mode" yaml:"mode"`
}

type StoreConfig struct {
	Driver     string `koanf:"driver" yaml:"driver"`
	SQLitePath string `koanf:"sqlite_path" yaml:"sqlite_path"`
}

type PostgresConfig struct {
	Host     string `koanf:"host" yaml:"host"`
	Port     string `koanf:"port" yaml:"port"`
	User     string `koanf:"user" yaml:"user"`
	Password string `koanf:"password" yaml:"password"`
	Name     string `koanf:"name" yaml:"name"`
	SSLMode  string `koanf:"sslmode" yaml:"sslmode"`
}

type HTTPConfig struct {
	CORSAllowOrigins []string      `koanf:"cors_allow_origins" yaml:"cors_allow_origins"`
	RateLimitRPS     float64       `koanf:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst   int           `koanf:"rate_limit_burst" yaml:"rate_limit_burst"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled" yaml:"enabled"`
}

type OtelConfig struct {
	Enabled     bool    `koanf:"enabled" yaml:"enabled"`
	Exporter    string  `koanf:"exporter" yaml:"exporter"`
	Endpoint    string  `koanf:"endpoint" yaml:"endpoint"`
	Insecure    bool    `koanf:"insecure" yaml:"insecure"`
	SampleRatio float64 `koanf:"sample_ratio" yaml:"sample_ratio"`
	ServiceName string  `koanf:"service_name" yaml:"service_name"`
}

func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func (c Config) DBConfig() db.Config {
	return db.Config{
		Driver:     c.Store.Driver,
		SQLitePath: c.Store.SQLitePath,
		Postgres: db.PostgresConfig{
			Host:     c.Postgres.Host,
			Port:     c.Postgres.Port,
			User:     c.Postgres.User,
			Password: c.Postgres.Password,
			Name:     c.Postgres.Name,
			SSLMode:  c.Postgres.SSLMode,
		},
	}
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"port":                    "8080",
		"log.mode":                "development",
		"store.driver":            db.DriverPostgres,
		"store.sqlite_path":       "person-api.db",
		"postgres.host":           "localhost",
		"postgres.port":           "5432",
		"postgres.user":           "postgres",
		"postgres.password":       "",
		"postgres.name":           "person",
		"postgres.sslmode":        "disable",
		"http.cors_allow_origins": []string{},
		"http.rate_limit_rps":     0.0,
		"http.rate_limit_burst":   20,
		"http.shutdown_timeout":   "10s",
		"metrics.enabled":         true,
		"otel.enabled":            false,
		"otel.exporter":           "otlp",
		"otel.endpoint":           "",
		"otel.insecure":           false,
		"otel.sample_ratio":       0.1,
		"otel.service_name":       "person-api",
	}
}

// envKeys maps the supported environment variables onto config keys.
var envKeys = map[string]string{
	"PORT":                        "port",
	"LOG_MODE":                    "log.mode",
	"STORE_DRIVER":                "store.driver",
	"SQLITE_PATH":                 "store.sqlite_path",
	"POSTGRES_HOST":               "postgres.host",
	"POSTGRES_PORT":               "postgres.port",
	"POSTGRES_USER":               "postgres.user",
	"POSTGRES_PASSWORD":           "postgres.password",
	"POSTGRES_NAME":               "postgres.name",
	"POSTGRES_SSLMODE":            "postgres.sslmode",
	"CORS_ALLOW_ORIGINS":          "http.cors_allow_origins",
	"RATE_LIMIT_RPS":              "http.rate_limit_rps",
	"RATE_LIMIT_BURST":            "http.rate_limit_burst",
	"SHUTDOWN_TIMEOUT":            "http.shutdown_timeout",
	"METRICS_ENABLED":             "metrics.enabled",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_EXPORTER":               "otel.exporter",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_EXPORTER_OTLP_INSECURE": "otel.insecure",
	"OTEL_SAMPLE_RATIO":           "otel.sample_ratio",
	"OTEL_SERVICE_NAME":           "otel.service_name",
}

// listKeys hold comma-separated values in the environment.
var listKeys = map[string]bool{
	"http.cors_allow_origins": true,
}

func envValue(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok {
		return "", nil
	}
	if !listKeys[key] {
		return key, value
	}
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"port":         "port",
	"log-mode":     "log.mode",
	"store-driver": "store.driver",
	"sqlite-path":  "store.sqlite_path",
}

// LoadConfig layers defaults < YAML file < environment < explicitly set flags.
// cfgFile and flags may be empty/nil.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile = strings.TrimSpace(cfgFile); cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.Postgres.Password != "" {
		c.Postgres.Password = "[REDACTED]"
	}
	return c
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Store.Driver)) {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("invalid store.driver %q (want %s or %s)", c.Store.Driver, db.DriverPostgres, db.DriverSQLite)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("http.shutdown_timeout must be positive")
	}
	if c.HTTP.RateLimitRPS < 0 {
		return fmt.Errorf("http.rate_limit_rps must not be negative")
	}
	return nil
}
