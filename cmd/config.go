package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/beliemun/uber-backend/internal/jobs"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var ErrTokenSecretIsRequired = errors.New("TOKEN_SECRET_KEY is required")

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	StorageDriver string

	TokenSecretKey string
	TokenIssuer    string
	TokenTTL       time.Duration

	BusMonitorSchedule string
	SSEKeepAlive       time.Duration
	LogLevel           slog.Level
}

// LoadConfig reads the configuration through getenv and applies defaults for
// unset keys. Malformed durations and log levels are errors.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:           withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:             getenv("DB_HOST"),
		DBPort:             withDefault(getenv("DB_PORT"), "5432"),
		DBUser:             getenv("DB_USER"),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME"),
		DBSslMode:          withDefault(getenv("DB_SSLMODE"), "disable"),
		StorageDriver:      strings.ToLower(withDefault(getenv("STORAGE_DRIVER"), StorageDriverPostgres)),
		TokenSecretKey:     getenv("TOKEN_SECRET_KEY"),
		TokenIssuer:        withDefault(getenv("TOKEN_ISSUER"), "uber-backend"),
		BusMonitorSchedule: withDefault(getenv("BUS_MONITOR_SCHEDULE"), jobs.DefaultBusMonitorSchedule),
	}

	var errs []error

	ttl, err := parseDuration("TOKEN_TTL", getenv("TOKEN_TTL"), 24*time.Hour)
	errs = append(errs, err)
	config.TokenTTL = ttl

	keepAlive, err := parseDuration("SSE_KEEPALIVE", getenv("SSE_KEEPALIVE"), 15*time.Second)
	errs = append(errs, err)
	config.SSEKeepAlive = keepAlive

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	return config, errors.Join(errs...)
}

// Validate checks the settings every storage driver needs.
func (c Config) Validate() error {
	var errs []error
	if c.TokenSecretKey == "" {
		errs = append(errs, ErrTokenSecretIsRequired)
	}
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not supported", c.StorageDriver))
	}
	if c.SSEKeepAlive <= 0 {
		errs = append(errs, fmt.Errorf("SSE_KEEPALIVE must be positive, got %s", c.SSEKeepAlive))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
