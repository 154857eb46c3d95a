// filepath: internal/cli/migrate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wardbulletin/internal/logging"
	"wardbulletin/internal/repository"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the database to the most recent version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the database by one version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("down")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the migration status for the current DB",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("status")
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
	migrateCmd.AddCommand(statusCmd)
}

func runMigration(command string) error {
	// The root command's PersistentPreRunE has already loaded the 'cfg'
	// global variable.
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	logging.Log.Infof("Running migration command: %s", command)

	var migrateErr error
	switch command {
	case "up":
		migrateErr = repo.MigrateUp()
	case "down":
		migrateErr = repo.MigrateDown()
	case "status":
		migrateErr = repo.MigrationStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	if migrateErr != nil {
		return fmt.Errorf("migration failed: %w", migrateErr)
	}

	logging.Log.Info("Migration operation completed successfully.")
	return nil
}
