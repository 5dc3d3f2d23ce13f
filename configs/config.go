package configs

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Market   MarketConfig
	Forecast ForecastConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// AllowDuplicateUsernames reproduces the legacy permissive
	// registration: unconditional insert, first credential match wins
	// at login, empty credentials accepted. Off by default.
	AllowDuplicateUsernames bool
}

// MarketConfig holds market data configuration
type MarketConfig struct {
	Period         string
	RefreshMinutes int
}

// ForecastConfig holds forecast engine configuration
type ForecastConfig struct {
	URL         string
	HorizonDays int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			AllowDuplicateUsernames: getEnvBool("AUTH_ALLOW_DUPLICATE_USERNAMES", false),
		},
		Market: MarketConfig{
			Period:         getEnv("MARKET_PERIOD", "1y"),
			RefreshMinutes: getEnvInt("MARKET_REFRESH_MINUTES", 15),
		},
		Forecast: ForecastConfig{
			URL:         getEnv("FORECAST_ENGINE_URL", "http://localhost:8000"),
			HorizonDays: getEnvInt("FORECAST_HORIZON_DAYS", 7),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
