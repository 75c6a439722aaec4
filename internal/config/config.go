package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Config holds all application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Mode        string `env:"GIN_MODE" envDefault:"debug"`
	SiteTitle   string `env:"SITE_TITLE" envDefault:"Portfolio"`
	GitHubURL   string `env:"GITHUB_URL" envDefault:"https://github.com"`
	CatalogPath string `env:"CATALOG_PATH"`

	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	TrackVisitors    bool          `env:"TRACK_VISITORS" envDefault:"true"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Mode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("GIN_MODE %q: want debug, release or test", cfg.Mode)
	}
	return cfg, nil
}

// BindFlags registers command-line overrides for cfg on fs. Flag defaults
// are the values already loaded from the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Port, "port", c.Port, "port to listen on")
	fs.StringVar(&c.CatalogPath, "catalog", c.CatalogPath, "YAML project catalog (built-in list when empty)")
	fs.StringVar(&c.DatabasePath, "db", c.DatabasePath, "SQLite database for visitor analytics")
	fs.BoolVar(&c.TrackVisitors, "tracking", c.TrackVisitors, "record hashed visitor analytics")
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AdminEnabled reports whether admin credentials were configured.
func (c Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}
