// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/castrosoft/portfolio/content"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ContentDir      string        `env:"CONTENT_DIR"`
	Variant         string        `env:"VARIANT" envDefault:"personal"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
	VisitsFile      string        `env:"VISITS_FILE" envDefault:"data/visits.json"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	// .env is optional when the environment already carries the settings.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings after flags have been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT cannot be empty")
	}
	if c.ContentDir == "" && !slices.Contains(content.Variants(), c.Variant) {
		return fmt.Errorf("config: VARIANT must be one of %v, got %q", content.Variants(), c.Variant)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ContentFS returns CONTENT_DIR when set, the embedded VARIANT otherwise.
func (c *Config) ContentFS() (fs.FS, error) {
	if c.ContentDir != "" {
		if _, err := os.Stat(c.ContentDir); err != nil {
			return nil, fmt.Errorf("config: CONTENT_DIR: %w", err)
		}
		return os.DirFS(c.ContentDir), nil
	}
	return content.Variant(c.Variant)
}
