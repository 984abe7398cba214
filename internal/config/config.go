package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Sheet     SheetConfig
	Admin     AdminConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Database  DatabaseConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	GinMode     string
	EnablePprof bool
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// SheetConfig holds the Google Apps Script endpoint configuration.
// An empty ScriptURL leaves the gateway unconfigured and the service
// runs on the built-in sample dataset.
type SheetConfig struct {
	ScriptURL      string
	TimeoutSeconds int
}

// AdminConfig holds the shared admin credential. This is a gate for edit
// affordances, not a security boundary.
type AdminConfig struct {
	Password string
}

// JWTConfig holds JWT configuration for admin session tokens
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// DatabaseConfig holds the preference store configuration
type DatabaseConfig struct {
	Path string
}

// SchedulerConfig holds the sheet refresh scheduler configuration
type SchedulerConfig struct {
	Enabled               bool
	RefreshCronExpression string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			EnablePprof: getEnvAsBool("ENABLE_PPROF", false),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Sheet: SheetConfig{
			ScriptURL:      getEnv("SHEET_SCRIPT_URL", ""),
			TimeoutSeconds: getEnvAsInt("SHEET_TIMEOUT_SECONDS", 15),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 12),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001,http://127.0.0.1:3000,http://127.0.0.1:3001"),
		},
		Database: DatabaseConfig{
			Path: getEnv("PREFS_DB_PATH", "emurai.db"),
		},
		Scheduler: SchedulerConfig{
			Enabled:               getEnvAsBool("REFRESH_SCHEDULER_ENABLED", true),
			RefreshCronExpression: getEnv("REFRESH_CRON_EXPRESSION", "0 */15 * * * *"),
		},
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as boolean with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
