package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Type string // "sqlite" or "postgres"
	DSN  string
	Path string // For SQLite: file path
}

// RateLimitConfig holds the completion-submission throttle policy.
// The defaults (10 submissions per 5 minutes per student per node) are
// tuned empirically; override via RATE_LIMIT_MAX_TOKENS and
// RATE_LIMIT_WINDOW_SECONDS.
type RateLimitConfig struct {
	MaxTokens     int
	WindowSeconds int
}

const (
	DefaultRateLimitMaxTokens     = 10
	DefaultRateLimitWindowSeconds = 300
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dbType := getEnv("DB_TYPE", "sqlite") // Default to SQLite for development
	dsn, dbPath := buildDSN(dbType)

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Type: dbType,
			DSN:  dsn,
			Path: dbPath,
		},
		RateLimit: RateLimitConfig{
			MaxTokens:     getEnvInt("RATE_LIMIT_MAX_TOKENS", DefaultRateLimitMaxTokens),
			WindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", DefaultRateLimitWindowSeconds),
		},
	}, nil
}

func buildDSN(dbType string) (string, string) {
	if dbType == "postgres" {
		// PostgreSQL configuration
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbUser := getEnv("DB_USER", "postgres")
		dbPassword := getEnv("DB_PASSWORD", "postgres")
		dbName := getEnv("DB_NAME", "melodytrail")
		sslMode := getEnv("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			dbHost, dbPort, dbUser, dbPassword, dbName, sslMode,
		)
		return dsn, ""
	}

	// SQLite configuration (default for development)
	dbPath := getEnv("SQLITE_PATH", "./data/melodytrail.db")
	dsn := dbPath + "?mode=rwc&cache=shared&timeout=5000"
	return dsn, dbPath
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
