package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Username string // Required: campus account
	Password string // Required: campus password

	SSOLoginURL  string        // Optional: SSO portal login endpoint (default: built-in)
	VPNRootURL   string        // Optional: WebVPN front-end (default: built-in)
	MaxRedirects int           // Optional: redirect chain bound (default: 10)
	HTTPTimeout  time.Duration // Optional: per-call HTTP timeout (default: 30s)

	JWBaseURL      string // Optional: academic-affairs API origin (default: built-in)
	JWWebRoot      string // Optional: academic-affairs browser origin (default: built-in)
	JWPlanPath     string // Optional: training-plan endpoint path (default: /api/jxjh)
	NoPlanPrefetch bool   // Optional: skip the background training-plan fetch

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	return Config{
		Username: os.Getenv("CCZU_USERNAME"),
		Password: os.Getenv("CCZU_PASSWORD"),

		SSOLoginURL:  os.Getenv("CCZU_SSO_LOGIN_URL"),
		VPNRootURL:   os.Getenv("CCZU_VPN_ROOT_URL"),
		MaxRedirects: getEnvIntOrDefault("CCZU_MAX_REDIRECTS", 0),
		HTTPTimeout:  getEnvDurationOrDefault("CCZU_HTTP_TIMEOUT", 0),

		JWBaseURL:      os.Getenv("CCZU_JW_BASE_URL"),
		JWWebRoot:      os.Getenv("CCZU_JW_WEB_ROOT"),
		JWPlanPath:     os.Getenv("CCZU_JW_PLAN_PATH"),
		NoPlanPrefetch: getEnvBoolOrDefault("CCZU_NO_PLAN_PREFETCH", false),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept "30s" style durations or bare integer seconds
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
