// Package env reads process environment variables with fallbacks, for the
// few knobs that sit outside the envconfig-managed config struct.
package env

import "os"

// Get returns the environment variable's value, or fallback when unset or blank.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
