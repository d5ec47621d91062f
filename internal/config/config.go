package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DevelopmentAPIKey is used when GEO_API_KEY is unset.
// It only exists for local development; deployments must supply their own key.
const DevelopmentAPIKey = "at_local_development_key"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port            string        `validate:"required,numeric"`
	ShutdownTimeout time.Duration `validate:"gt=0"`

	// Logging
	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogPretty bool

	// Geolocation provider
	GeoAPIKey string `validate:"required"`

	// Rate limiting of the HTTP surface
	RateLimitType   string `validate:"oneof=memory redis"`
	RateLimit       int    `validate:"gt=0"` // requests allowed per window
	RateLimitWindow int    `validate:"gt=0"` // window in seconds

	// Redis configuration (redis rate limiter)
	RedisAddr     string
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
}

// Load reads configuration from the environment, with a .env file for local development
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),

		GeoAPIKey: getEnv("GEO_API_KEY", DevelopmentAPIKey),

		RateLimitType:   strings.ToLower(getEnv("RATE_LIMITER_TYPE", "memory")),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 10),
		RateLimitWindow: getEnvAsInt("RATE_LIMIT_WINDOW", 1),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// UsesDevelopmentKey reports whether no API key was supplied
func (c *Config) UsesDevelopmentKey() bool {
	return c.GeoAPIKey == DevelopmentAPIKey
}

// RequestsPerSecond is the effective HTTP rate limit
func (c *Config) RequestsPerSecond() float64 {
	return float64(c.RateLimit) / float64(c.RateLimitWindow)
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns the default if the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
