package config

import "time"

// RateLimitConfig controls the fixed-window request limiter. Limit requests
// are allowed per client per window; the counter lives in Redis so multiple
// instances share one budget.
type RateLimitConfig struct {
	Enabled bool          // master switch; limiter is also off when Redis is absent
	Limit   int           // allowed requests per window
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables with sane defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenvBool("RATE_LIMIT_ENABLED", true),
		Limit:   getenvInt("RATE_LIMIT_REQUESTS", 120),
		Window:  getenvDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

// getenvDur parses a duration variable such as "30s" or "1m".
func getenvDur(key string, def time.Duration) time.Duration {
	if v := getenv(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
