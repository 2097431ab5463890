package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the trading bot.
type Config struct {
	Port string

	// Database
	DBPath string

	// Strategy instances (workers) are defined in a YAML file.
	StrategiesPath string

	// Worker loop
	WorkerEnabled      bool
	WorkerLookback     int           // bars fetched per iteration
	WorkerPollInterval time.Duration // sleep between iterations
	WorkerErrorBackoff time.Duration // sleep after a failed iteration

	// Demo data seeding on startup
	SeedMockData bool
}

// Load reads environment variables (optionally via .env) into Config.
func Load() (*Config, error) {
	// Ignore error so the app still starts when .env is missing.
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "./data/trading.db"),
		StrategiesPath:     getEnv("STRATEGIES_PATH", "./strategies.yaml"),
		WorkerEnabled:      getEnv("WORKER_ENABLED", "true") == "true",
		WorkerLookback:     getEnvInt("WORKER_LOOKBACK", 200),
		WorkerPollInterval: getEnvDuration("WORKER_POLL_INTERVAL", 60*time.Second),
		WorkerErrorBackoff: getEnvDuration("WORKER_ERROR_BACKOFF", 120*time.Second),
		SeedMockData:       getEnv("SEED_MOCK_DATA", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
