package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string // "sqlite" or "postgres"
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SEA-LION text-generation API
	SeaLionAPIKey  string
	SeaLionAPIURL  string
	SeaLionModel   string
	SeaLionTimeout time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "5001"),
		Env:  getEnv("ENV", "development"),

		// Database. SQLite is the default for the single-user setup;
		// postgres is opt-in for shared deployments.
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "finwise.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finwise"),
		DBPassword: getEnv("DB_PASSWORD", "finwise"),
		DBName:     getEnv("DB_NAME", "finwise"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// SEA-LION
		SeaLionAPIKey: getEnv("SEA_LION_API_KEY", ""),
		SeaLionAPIURL: getEnv("SEA_LION_API_URL", "https://api.sea-lion.ai/v1/chat/completions"),
		SeaLionModel:  getEnv("SEA_LION_MODEL", "aisingapore/Llama-SEA-LION-v3.5-8B-R"),
	}

	timeoutStr := getEnv("SEA_LION_TIMEOUT", "60s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid SEA_LION_TIMEOUT value '%s', falling back to 60s\n", timeoutStr)
		timeout = 60 * time.Second
	}
	config.SeaLionTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
