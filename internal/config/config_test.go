package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "AUTH_JWT_SECRET", "AUTH_BCRYPT_COST", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"STORE_BACKEND", "DATA_FILE", "EMPLOYEES_FILE", "CORS_ALLOWED_ORIGINS", "AUTH_TOKEN_TTL_MINUTES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.App.Port)
	assert.Equal(t, "*", cfg.App.AllowedOrigins)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.UsesDefaultSecret())
	assert.Equal(t, 8, cfg.Auth.BcryptCost)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "password123", cfg.Auth.AdminPassword)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "./data.json", cfg.Store.DataFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.App.Addr())
	assert.False(t, cfg.Auth.UsesDefaultSecret())
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 8, cfg.Auth.BcryptCost)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{Store: StoreConfig{Backend: BackendMemory}}},
		{name: "file", cfg: Config{Store: StoreConfig{Backend: BackendFile, DataFile: "a", EmployeesFile: "b"}}},
		{name: "file without path", cfg: Config{Store: StoreConfig{Backend: BackendFile}}, wantErr: true},
		{name: "postgres without dsn", cfg: Config{Store: StoreConfig{Backend: BackendPostgres}}, wantErr: true},
		{name: "postgres", cfg: Config{Store: StoreConfig{Backend: BackendPostgres}, Postgres: PostgresConfig{DSN: "postgres://x"}}},
		{name: "redis", cfg: Config{Store: StoreConfig{Backend: BackendRedis}, Redis: RedisConfig{Addr: "localhost:6379"}}},
		{name: "unknown", cfg: Config{Store: StoreConfig{Backend: "mongo"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
