package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(env(map[string]string{"TOKEN_SECRET_KEY": "secret"}))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, StorageDriverPostgres, config.StorageDriver)
	assert.Equal(t, "uber-backend", config.TokenIssuer)
	assert.Equal(t, 24*time.Hour, config.TokenTTL)
	assert.Equal(t, "@every 1m", config.BusMonitorSchedule)
	assert.Equal(t, 15*time.Second, config.SSEKeepAlive)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	require.NoError(t, config.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	config, err := LoadConfig(env(map[string]string{
		"HTTP_PORT":            "9090",
		"DB_HOST":              "db",
		"DB_USER":              "uber",
		"DB_PASSWORD":          "pass",
		"DB_NAME":              "orders",
		"STORAGE_DRIVER":       "Memory",
		"TOKEN_SECRET_KEY":     "secret",
		"TOKEN_ISSUER":         "issuer",
		"TOKEN_TTL":            "0s",
		"BUS_MONITOR_SCHEDULE": "*/5 * * * *",
		"SSE_KEEPALIVE":        "2s",
		"LOG_LEVEL":            "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, StorageDriverMemory, config.StorageDriver)
	assert.Equal(t, "issuer", config.TokenIssuer)
	assert.Zero(t, config.TokenTTL)
	assert.Equal(t, "*/5 * * * *", config.BusMonitorSchedule)
	assert.Equal(t, 2*time.Second, config.SSEKeepAlive)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.Equal(t, "host=db port=5432 user=uber password=pass dbname=orders sslmode=disable", config.DSN())
}

func TestLoadConfig_MalformedValues(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{
		"TOKEN_TTL":     "a day",
		"SSE_KEEPALIVE": "often",
		"LOG_LEVEL":     "chatty",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_TTL")
	assert.Contains(t, err.Error(), "SSE_KEEPALIVE")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{TokenSecretKey: "secret", StorageDriver: StorageDriverMemory, SSEKeepAlive: time.Second}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid"},
		{
			name:    "missing secret",
			mutate:  func(c *Config) { c.TokenSecretKey = "" },
			wantErr: "TOKEN_SECRET_KEY",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.StorageDriver = "mongo" },
			wantErr: "mongo",
		},
		{
			name:    "non-positive keepalive",
			mutate:  func(c *Config) { c.SSEKeepAlive = 0 },
			wantErr: "SSE_KEEPALIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			if tt.mutate != nil {
				tt.mutate(&c)
			}

			err := c.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateRequiresSecret(t *testing.T) {
	err := Config{StorageDriver: StorageDriverPostgres, SSEKeepAlive: time.Second}.Validate()
	require.ErrorIs(t, err, ErrTokenSecretIsRequired)
}
