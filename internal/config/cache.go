package config

import (
    "time"
)

// CacheConfig defines settings for the dashboard-summary response cache.
// When Enabled is false or no Redis client is available, caching is a
// no-op.  TTL bounds how stale the three aggregate counts may appear;
// the counts are snapshots anyway, so a few seconds of staleness is
// acceptable.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        TTL:          envDur("CACHE_TTL", 15*time.Second),
        Prefix:       envStr("CACHE_PREFIX", "cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}
