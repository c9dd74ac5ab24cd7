// Package config loads application configuration from environment
// variables. Every value has a default suitable for running the demo
// locally; nothing is required, so a bare `go run ./cmd/server` works
// against a fresh database file.
package config

import "os"

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBPath    string // path of the SQLite database file
	BrokerURL string // AMQP URL for booking events; empty disables them
}

// Load reads configuration values from environment variables and
// returns a Config populated with defaults for anything unset.
func Load() Config {
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Port:      getenv("PORT", "5000"),
		DBPath:    getenv("DB_PATH", "cinema.db"),
		BrokerURL: brokerURL(),
	}
}

// brokerURL honors both RABBITMQ_URL and the generic AMQP_URL. An empty
// result means booking events are disabled.
func brokerURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}
