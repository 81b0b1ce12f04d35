package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
)

// Config holds the runtime configuration of the booking service.  All
// values come from environment variables and fall back to defaults
// usable in development, so the binary runs with no configuration at
// all.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	QueueCapacity int    // bound of the booking request queue
}

// Load reads configuration from environment variables, applying
// defaults for anything unset.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8000"),
		QueueCapacity: getint("QUEUE_CAPACITY", 1024),
	}
}

// getenv returns the value of an environment variable or a default
// when it is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getint is like getenv but parses the value as an integer, keeping
// the default on parse failure.
func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
