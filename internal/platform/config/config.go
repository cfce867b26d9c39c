package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr               string
	Environment        string
	DataDir            string
	TaxYear            int
	DatabaseURL        string
	AuthSecret         string
	OptimizerStep      float64
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	RunMigrations      bool
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		DataDir:            getEnv("DATA_DIR", "data"),
		TaxYear:            getEnvInt("TAX_YEAR", 2025),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		AuthSecret:         getEnv("AUTH_SECRET", ""),
		OptimizerStep:      getEnvFloat("OPTIMIZER_STEP", 1000),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// HistoryEnabled reports whether run history persistence is configured. The
// service runs fully without a database; history is an add-on.
func (c Config) HistoryEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.TaxYear < 2000 || c.TaxYear > 2100 {
		return fmt.Errorf("TAX_YEAR %d is out of range", c.TaxYear)
	}
	if c.OptimizerStep <= 0 {
		return fmt.Errorf("OPTIMIZER_STEP must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.Environment == "production" && strings.TrimSpace(c.AuthSecret) == "" {
		return fmt.Errorf("AUTH_SECRET must be set in production")
	}
	return nil
}
