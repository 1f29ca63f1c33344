package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaultMaxBodyBytes accommodates goal images uploaded as base64 payloads.
const defaultMaxBodyBytes = 50 << 20 // 50 MiB

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	MaxBodyBytes int64

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
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
		Port:         getEnv("PORT", "3333"),
		MaxBodyBytes: getEnvInt64("MAX_BODY_BYTES", defaultMaxBodyBytes),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "eixo"),
		DBPassword: getEnv("DB_PASSWORD", "eixo"),
		DBName:     getEnv("DB_NAME", "eixo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

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

// getEnvInt64 retrieves an integer environment variable or returns a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
