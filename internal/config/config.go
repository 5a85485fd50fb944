// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DefaultPageSize is the limit used when a request omits one.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps requested page limits; larger requests are
	// silently reduced.
	MaxPageSize int `koanf:"max_page_size"`

	// CatalogSize sets how many products the generated catalog holds.
	CatalogSize int `koanf:"catalog_size"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8000",
		DefaultPageSize: 10,
		MaxPageSize:     100,
		CatalogSize:     100,
	}
}
