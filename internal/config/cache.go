package config

import "time"

// CacheConfig controls the read-through response cache for catalog GET
// endpoints. Entries are short-lived; mutations do not invalidate explicitly,
// the TTL bounds staleness instead.
type CacheConfig struct {
	Enabled      bool          // master switch; cache is also off when Redis is absent
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // Redis key namespace
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads the CACHE_* variables with sane defaults.
func LoadCacheConfig() CacheConfig {
	cfg := CacheConfig{
		Enabled:      getenvBool("CACHE_ENABLED", true),
		TTL:          getenvDur("CACHE_TTL", 15*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: getenvInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 15 * time.Second
	}
	return cfg
}
