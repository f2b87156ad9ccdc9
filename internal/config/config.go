package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	App     AppConfig
}

type StorageConfig struct {
	// Path of the local SQLite file backing the key-value store. Empty
	// selects the in-memory store.
	Path string
}

// AppConfig holds application configuration.
type AppConfig struct {
	Env        string
	LogLevel   string
	SeedDemo   bool
	PayrollDay int
}

func Load() (*Config, error) {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	config := &Config{}

	config.Storage = StorageConfig{
		Path: getEnv("STORAGE_PATH", "hr-core.db"),
	}

	payrollDay, err := strconv.Atoi(getEnv("PAYROLL_DAY", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DAY: %w", err)
	}

	config.App = AppConfig{
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		SeedDemo:   getEnvBool("SEED_DEMO", true),
		PayrollDay: payrollDay,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.App.PayrollDay < 1 || c.App.PayrollDay > 28 {
		return fmt.Errorf("PAYROLL_DAY must be between 1 and 28")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
