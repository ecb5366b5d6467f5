package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Host string
	Port string

	// Synthetic dataset
	DataSeed    int64
	DataRecords int

	// Rate limiting
	RateLimit         int
	RateWindowSeconds int
}

func Load() *Config {
	cfg := &Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8080"),

		DataSeed:    int64(getEnvInt("DATA_SEED", 42)),
		DataRecords: getEnvInt("DATA_RECORDS", 500),

		RateLimit:         getEnvInt("RATE_LIMIT", 60),
		RateWindowSeconds: getEnvInt("RATE_WINDOW_SECONDS", 60),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
