// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Default Driver", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
	})

	t.Run("Sqlite Driver", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", Path: "bulletin.db"}}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
	})

	t.Run("Postgres Requires DSN", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "postgres"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "requires a dsn")
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "oracle"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown database driver")
	})
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: 3001, CORSOrigin: "http://localhost:5173"},
		Database: DatabaseConfig{Driver: "sqlite", Path: "bulletin.db"},
		Logging:  LoggingConfig{Level: "debug", AuditEnabled: true},
		JWT:      JWTConfig{DurationHours: 24, Secret: "persisted-secret"},
	}
	assert.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg.Server, loaded.Server)
	assert.Equal(t, cfg.Database, loaded.Database)
	assert.Equal(t, cfg.Logging, loaded.Logging)
	assert.Equal(t, cfg.JWT, loaded.JWT)

	// Runtime-only fields must not round-trip through the file.
	assert.Empty(t, loaded.JWTSecret)
	assert.Empty(t, loaded.AdminPassword)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
