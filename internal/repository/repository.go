// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"wardbulletin/internal/config"
	"wardbulletin/internal/db/migrations"
	"wardbulletin/internal/logging"
)

// userCacheTTL bounds how long a user row may be served from memory. Every
// user mutation invalidates the affected entries, so approval or role changes
// are visible to the next request regardless of the TTL.
const userCacheTTL = 5 * time.Minute

// Repository provides access to the relational store. All state lives in the
// database; the cache only ever holds copies of user rows.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder sq.StatementBuilderType // SQL Query Builder

	dialect      string // goose dialect name
	migrationDir string // directory inside migrations.FS
}

// NewRepository opens the configured database and prepares the query builder
// with the driver's placeholder format.
func NewRepository(cfg *config.Config) (*Repository, error) {
	var (
		db           *sql.DB
		err          error
		builder      sq.StatementBuilderType
		dialect      string
		migrationDir string
	)

	switch cfg.Database.Driver {
	case "", "sqlite":
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", cfg.Database.Path)
		db, err = sql.Open("sqlite", dsn)
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		dialect = "sqlite3"
		migrationDir = "sqlite"
	case "postgres":
		db, err = sql.Open("postgres", cfg.Database.DSN)
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		dialect = "postgres"
		migrationDir = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:           db,
		Cache:        cache.New(userCacheTTL, 10*time.Minute),
		Builder:      builder,
		dialect:      dialect,
		migrationDir: migrationDir,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// configureGoose points goose at the embedded migrations for our dialect.
func (s *Repository) configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped applies any pending migrations. Called on server
// startup so a fresh database is usable immediately.
func (s *Repository) EnsureSchemaBootstrapped() error {
	if err := s.configureGoose(); err != nil {
		return err
	}
	if err := goose.Up(s.DB, s.migrationDir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// ValidateSchema verifies the database is at the latest known migration
// version and refuses to serve otherwise.
func (s *Repository) ValidateSchema() error {
	if err := s.configureGoose(); err != nil {
		return err
	}
	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	available, err := goose.CollectMigrations(s.migrationDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	if len(available) == 0 {
		return errors.New("no migrations found")
	}
	latest := available[len(available)-1].Version
	if current < latest {
		return fmt.Errorf("database schema is outdated (have version %d, want %d): run 'wardbulletin migrate up'", current, latest)
	}
	logging.Log.Debugf("ValidateSchema: database at version %d", current)
	return nil
}

// MigrateUp applies all pending migrations.
func (s *Repository) MigrateUp() error {
	if err := s.configureGoose(); err != nil {
		return err
	}
	return goose.Up(s.DB, s.migrationDir)
}

// MigrateDown rolls back the most recent migration.
func (s *Repository) MigrateDown() error {
	if err := s.configureGoose(); err != nil {
		return err
	}
	return goose.Down(s.DB, s.migrationDir)
}

// MigrationStatus prints the migration status table.
func (s *Repository) MigrationStatus() error {
	if err := s.configureGoose(); err != nil {
		return err
	}
	return goose.Status(s.DB, s.migrationDir)
}

// isUniqueViolation recognizes duplicate-key errors from both supported
// drivers. Uniqueness races are resolved by the store, so this is the only
// duplicate detection the repository needs.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
