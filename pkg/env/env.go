// Package env reads raw process environment values. Structured configuration
// lives in pkg/config; this is for the few spots that need a value before
// config is loaded.
package env

import "os"

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
