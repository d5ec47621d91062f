package limiter

import (
	"fmt"
	"strings"
)

// Config selects and parameterizes a limiter
type Config struct {
	Type              string  // "memory" or "redis"
	RequestsPerSecond float64 // may be fractional

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New creates the limiter named by cfg.Type
func New(cfg Config) (Limiter, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "memory", "":
		return NewMemoryLimiter(cfg.RequestsPerSecond), nil
	case "redis":
		l, err := NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RequestsPerSecond)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis limiter: %w", err)
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown rate limiter type: %s (supported: 'memory', 'redis')", cfg.Type)
	}
}
