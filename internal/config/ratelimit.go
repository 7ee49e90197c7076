package config

import (
	"sync"
	"time"
)

// RateLimitConfig holds per-scope request budgets. Every scope shares the
// same sliding window; a negative budget turns that limiter off.
type RateLimitConfig struct {
	Window    time.Duration
	GlobalMax int
	TurnMax   int
	ResumeMax int
}

var (
	rateLimitConfig *RateLimitConfig
	rateLimitOnce   sync.Once
)

func LoadRateLimitConfig() *RateLimitConfig {
	rateLimitOnce.Do(func() {
		rateLimitConfig = &RateLimitConfig{
			Window:    getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			GlobalMax: getEnvInt("RATE_LIMIT_GLOBAL", 100),
			TurnMax:   getEnvInt("RATE_LIMIT_TURN", 30),
			ResumeMax: getEnvInt("RATE_LIMIT_RESUME", 10),
		}
	})
	return rateLimitConfig
}
