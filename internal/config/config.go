// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	JWT      JWTConfig      `toml:"jwt"`

	AdminPassword      string `toml:"-"` // Not loaded from file, set by CLI/env
	ResetAdminPassword bool   `toml:"-"` // Not loaded from file, set by CLI/env
	JWTSecret          string `toml:"-"` // Runtime secret (from env, flag, or file)
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	CORSOrigin string `toml:"cors_origin"` // Allowed browser origin for the SPA
}

// DatabaseConfig holds the database configuration.
// Driver is "sqlite" (default) or "postgres". Path is the SQLite file;
// DSN is the Postgres connection string.
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
	DSN    string `toml:"dsn"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// JWTConfig holds settings for token generation.
type JWTConfig struct {
	DurationHours int    `toml:"duration_hours"`
	Secret        string `toml:"secret"` // Persisted secret
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate checks configuration consistency after all overrides
// have been applied.
func (c *Config) ParseAndValidate() error {
	switch c.Database.Driver {
	case "", "sqlite":
		// Path default is applied by the CLI layer.
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database driver 'postgres' requires a dsn")
		}
	default:
		return fmt.Errorf("unknown database driver: %s", c.Database.Driver)
	}
	return nil
}
