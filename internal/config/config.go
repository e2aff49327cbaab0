package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port      string
	DBPath    string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from LARDER_* environment variables, after
// folding in a .env file when one is found.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		Port:      getEnv("LARDER_PORT", "8080"),
		DBPath:    getEnv("LARDER_DB_PATH", "larder.db"),
		LogLevel:  getEnv("LARDER_LOG_LEVEL", "info"),
		LogFormat: getEnv("LARDER_LOG_FORMAT", "text"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
