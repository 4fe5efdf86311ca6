package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config drives the load harness in cmd. The cache itself takes no
// configuration; these knobs only shape the generated workload.
type Config struct {
	OrderCount    int
	SecurityCount int
	UserCount     int
	CompanyCount  int
	Seed          int64
	LogLevel      string
}

func Default() *Config {
	return &Config{
		OrderCount:    1_000_000,
		SecurityCount: 1_000,
		UserCount:     1_000,
		CompanyCount:  1_000,
		Seed:          42,
		LogLevel:      "info",
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables. Priority: ENV > .env file > defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.OrderCount = getEnvInt("ORDER_COUNT", cfg.OrderCount)
	cfg.SecurityCount = getEnvInt("SECURITY_COUNT", cfg.SecurityCount)
	cfg.UserCount = getEnvInt("USER_COUNT", cfg.UserCount)
	cfg.CompanyCount = getEnvInt("COMPANY_COUNT", cfg.CompanyCount)
	cfg.Seed = int64(getEnvInt("SEED", int(cfg.Seed)))
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if cfg.OrderCount <= 0 {
		return nil, errors.New("ORDER_COUNT must be greater than 0")
	}
	if cfg.SecurityCount <= 0 || cfg.UserCount <= 0 || cfg.CompanyCount <= 0 {
		return nil, errors.New("SECURITY_COUNT, USER_COUNT and COMPANY_COUNT must be greater than 0")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
