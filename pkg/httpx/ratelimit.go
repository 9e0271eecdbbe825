package httpx

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig defines client-side pacing for outbound requests.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the window.
	RequestsPerWindow int
	// Window is the time window for rate limiting.
	Window time.Duration
	// Burst allows temporary bursts above the steady rate. The login flow
	// issues several requests back to back (probe, redirects, form post),
	// so the burst should cover a full authentication pass.
	Burst int
}

// PortalLimit is the default pacing profile for campus portal traffic.
// Override with: RATELIMIT_PORTAL_REQUESTS, RATELIMIT_PORTAL_WINDOW_SEC,
// RATELIMIT_PORTAL_BURST.
var PortalLimit = RateLimitConfig{
	RequestsPerWindow: 60,
	Window:            time.Minute,
	Burst:             15,
}

func init() {
	PortalLimit = ParseRateLimitFromEnv("PORTAL", PortalLimit)
}

// ParseRateLimitFromEnv reads a rate limit configuration from environment
// variables following the pattern RATELIMIT_{prefix}_{field}, e.g.
// RATELIMIT_PORTAL_REQUESTS. Unset or unparseable values keep the default.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if requests, err := strconv.Atoi(val); err == nil && requests > 0 {
			config.RequestsPerWindow = requests
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			config.Burst = burst
		}
	}

	return config
}
