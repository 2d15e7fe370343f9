package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Printful API
	PrintfulAPIKey  string
	PrintfulBaseURL string

	// Upload retry policy
	UploadRetries    int
	UploadRetryDelay int // seconds between attempts, constant

	// Product defaults
	DefaultRetailPrice string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := &Config{
		PrintfulAPIKey:     getEnv("PRINTFUL_API_KEY", ""),
		PrintfulBaseURL:    getEnv("PRINTFUL_BASE_URL", "https://api.printful.com"),
		UploadRetries:      getEnvAsInt("UPLOAD_RETRIES", 3),
		UploadRetryDelay:   getEnvAsInt("UPLOAD_RETRY_DELAY", 5),
		DefaultRetailPrice: getEnv("DEFAULT_RETAIL_PRICE", "29.99"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if cfg.PrintfulAPIKey == "" {
		return nil, fmt.Errorf("PRINTFUL_API_KEY is required")
	}
	if cfg.UploadRetries < 1 {
		return nil, fmt.Errorf("UPLOAD_RETRIES must be at least 1, got %d", cfg.UploadRetries)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
