package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the products API and the optional Postgres load log.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SALES_API_URL=https://labdados.com/produtos
//	SALES_API_TIMEOUT=15s
//	EXPORT_CACHE_ENTRIES=16
//	RATE_LIMIT_RPS=1
//	RATE_LIMIT_BURST=60
//	POSTGRES_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=salespulse
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	SalesAPI SalesAPIConfig // Upstream products API
	Export   ExportConfig   // Export cache sizing
	Postgres PostgresConfig // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string  // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitRPS   float64 // Tokens per second per client IP; 0 disables limiting
	RateLimitBurst int     // Bucket size per client IP
}

// SalesAPIConfig points the ingestion client at the products API.
type SalesAPIConfig struct {
	URL     string
	Timeout time.Duration // 0 leaves only the request context deadline
}

// ExportConfig sizes the encoded-file cache.
type ExportConfig struct {
	CacheEntries int
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Enabled: whether loads are recorded in PostgreSQL at all.
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 60)

	viper.SetDefault("SALES_API_URL", "https://labdados.com/produtos")
	viper.SetDefault("SALES_API_TIMEOUT", "0s")
	viper.SetDefault("EXPORT_CACHE_ENTRIES", 16)

	viper.SetDefault("POSTGRES_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "salespulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		SalesAPI: SalesAPIConfig{
			URL:     viper.GetString("SALES_API_URL"),
			Timeout: viper.GetDuration("SALES_API_TIMEOUT"),
		},
		Export: ExportConfig{
			CacheEntries: viper.GetInt("EXPORT_CACHE_ENTRIES"),
		},
		Postgres: PostgresConfig{
			Enabled:  viper.GetBool("POSTGRES_ENABLED"),
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	// Validate critical fields
	validateConfig()
}

// DSN renders the connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// missingKeys lists the critical variables absent from cfg. Postgres keys
// are only required when POSTGRES_ENABLED is set.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.SalesAPI.URL == "" {
		missing = append(missing, "SALES_API_URL")
	}
	if !cfg.Postgres.Enabled {
		return missing
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
