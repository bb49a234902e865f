package resilience

import "time"

// CircuitBreakerConfig tunes a breaker guarding one downstream, such as the
// event broker. Zero values fall back to the defaults below.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: defaultFailureThreshold,
		OpenTimeout:      defaultOpenTimeout,
		HalfOpenMaxReq:   defaultHalfOpenMaxReq,
	}
}

// Normalized fills unset or out-of-range fields. Enabled is left untouched.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	c.FailureThreshold = atLeast(c.FailureThreshold, 1, defaultFailureThreshold)
	c.HalfOpenMaxReq = atLeast(c.HalfOpenMaxReq, 1, defaultHalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	return c
}

func atLeast(v, floor, fallback int) int {
	if v < floor {
		return fallback
	}
	return v
}
