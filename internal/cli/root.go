// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"wardbulletin/internal/config"
	"wardbulletin/internal/logging"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	adminPassword string
	port          int
	logLevel      string
	resetPassword bool
	jwtSecret     string
	dbDriver      string
	dbPath        string
	dbDSN         string
	corsOrigin    string
	auditEnabled  bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "wardbulletin",
	Short: "Ward Bulletin API",
	Long:  `A REST API and websocket backend for collaboratively editing sacrament meeting agendas and printed ward bulletins.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: WB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: WB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver: sqlite or postgres. (Env: WB_DB_DRIVER)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: WB_DB_PATH)")
	RootCmd.PersistentFlags().StringVar(&dbDSN, "db-dsn", "", "PostgreSQL connection string. (Env: WB_DB_DSN)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the 'admin' user. (Env: WB_ADMIN_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: WB_PORT)")
	RootCmd.Flags().BoolVar(&resetPassword, "reset_pw", false, "If true, reset admin password on startup. (Env: WB_RESET_PW=true)")
	RootCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: WB_JWT_SECRET)")
	RootCmd.Flags().StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origin for the browser frontend. (Env: WB_CORS_ORIGIN)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: WB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// Load a .env file if present. Missing files are fine.
	_ = godotenv.Load()

	// 1. Check environment variable for config path first
	if envPath := os.Getenv("WB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("WB_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := getEnv("WB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("WB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("WB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := getEnv("WB_RESET_PW"); v == "true" {
		c.ResetAdminPassword = true
	}
	if v := getEnv("WB_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := getEnv("WB_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("WB_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := getEnv("WB_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := getEnv("WB_CORS_ORIGIN"); v != "" {
		c.Server.CORSOrigin = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if adminPassword != "" {
		c.AdminPassword = adminPassword
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if resetPassword {
		c.ResetAdminPassword = true
	}
	if dbDriver != "" {
		c.Database.Driver = dbDriver
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if dbDSN != "" {
		c.Database.DSN = dbDSN
	}
	if jwtSecret != "" {
		c.JWTSecret = jwtSecret
	}
	if corsOrigin != "" {
		c.Server.CORSOrigin = corsOrigin
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "wardbulletin.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.JWT.DurationHours == 0 {
		c.JWT.DurationHours = 24
	}
}
