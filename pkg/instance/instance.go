package instance

import "os"

// GetID returns the server instance identifier or a default value.
func GetID() string {
	if id := os.Getenv("STOREFRONT_INSTANCE"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
