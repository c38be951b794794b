package config

import "os"

// Config holds the service settings read from the environment.
type Config struct {
	Port    string
	GinMode string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Port:    "8080",
		GinMode: "release",
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	return cfg
}
