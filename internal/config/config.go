package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// CoordinatorConfig governs the coordinator process.
type CoordinatorConfig struct {
	Port              string
	RiskAgentURL      string
	PatternAgentURL   string
	SpecialistTimeout time.Duration
	ResultCacheTTL    time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
}

// LoadCoordinatorConfig reads coordinator settings from the environment.
func LoadCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		Port:              GetEnv("COORDINATOR_PORT", "8000"),
		RiskAgentURL:      GetEnv("RISK_AGENT_URL", "http://localhost:8002"),
		PatternAgentURL:   GetEnv("PATTERN_AGENT_URL", "http://localhost:8001"),
		SpecialistTimeout: GetDurationEnv("SPECIALIST_TIMEOUT", 5*time.Second),
		ResultCacheTTL:    GetDurationEnv("RESULT_CACHE_TTL", 10*time.Minute),
		RedisAddr:         GetEnv("REDIS_ADDR", ""),
		RedisPassword:     GetEnv("REDIS_PASSWORD", ""),
		RedisDB:           GetIntEnv("REDIS_DB", 0),
	}
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
