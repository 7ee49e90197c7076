package config

import (
	"sync"
	"time"
)

type BreakerConfig struct {
	Enabled     bool
	MaxFailures uint32
	OpenTimeout time.Duration
}

var (
	breakerConfig *BreakerConfig
	breakerOnce   sync.Once
)

func LoadBreakerConfig() *BreakerConfig {
	breakerOnce.Do(func() {
		breakerConfig = &BreakerConfig{
			Enabled:     getEnvBool("BREAKER_ENABLED", true),
			MaxFailures: uint32(getEnvInt("BREAKER_MAX_FAILURES", 5)),
			OpenTimeout: getEnvDuration("BREAKER_OPEN_TIMEOUT", 30*time.Second),
		}
	})
	return breakerConfig
}
