package mwapi

import (
	"os"
	"time"
)

// Config holds MediaWiki query client settings
type Config struct {
	// UserAgent identifies the client to the wikis
	UserAgent string

	// Timeout for individual API requests
	Timeout time.Duration

	// ThrottleInterval is the minimum spacing between the start of any
	// two outbound requests issued through one client instance
	ThrottleInterval time.Duration

	// Scheme for the API endpoint ("http" or "https"); fixtures override this
	Scheme string
}

// DefaultThrottleInterval spaces outbound requests to stay within the
// anonymous-client rate limits of the public Wikimedia APIs.
const DefaultThrottleInterval = 500 * time.Millisecond

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	userAgent := os.Getenv("DOUBLECHECK_USER_AGENT")
	if userAgent == "" {
		userAgent = "WikiLoopDoubleCheck/1.0 (https://github.com/tyty999/wikiloop-doublecheck)"
	}

	timeout := 30 * time.Second
	if t := os.Getenv("DOUBLECHECK_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	throttle := DefaultThrottleInterval
	if t := os.Getenv("DOUBLECHECK_THROTTLE_INTERVAL"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d >= 0 {
			throttle = d
		}
	}

	scheme := os.Getenv("DOUBLECHECK_API_SCHEME")
	if scheme == "" {
		scheme = "http"
	}

	return &Config{
		UserAgent:        userAgent,
		Timeout:          timeout,
		ThrottleInterval: throttle,
		Scheme:           scheme,
	}
}
