package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds configurable timeout values for talking to the API.
type Timeouts struct {
	HTTP time.Duration // Timeout for a single API request
	// Attempts is the number of tries of a read request failing transiently.
	Attempts int
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - YMIR_HTTP_TIMEOUT (default: 60s)
//   - YMIR_HTTP_ATTEMPTS (default: 3)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		HTTP:     parseDuration("YMIR_HTTP_TIMEOUT", 60*time.Second),
		Attempts: max(parseInt("YMIR_HTTP_ATTEMPTS", 3), 1),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
