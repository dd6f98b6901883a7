package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/curvekit"
)

// Config holds the settings shared by the curvekit commands.
type Config struct {
	Addr       string   `envconfig:"ADDR" default:":8080"`
	Width      int      `envconfig:"WIDTH" default:"800"`
	Height     int      `envconfig:"HEIGHT" default:"600"`
	Background string   `envconfig:"BACKGROUND" default:"#FFFFFF"`
	LogLevel   string   `envconfig:"LOG_LEVEL" default:"info"`
	Origins    []string `envconfig:"ORIGINS" default:"localhost:*,127.0.0.1:*"`
	Seed       uint64   `envconfig:"SEED" default:"0"`
}

// Prefix is prepended to every variable name, e.g. CURVEKIT_ADDR.
const Prefix = "CURVEKIT"

// Load reads the CURVEKIT_* environment variables and validates them.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the canvas size, background color and log level.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if !curvekit.IsHexColor(c.Background) {
		return fmt.Errorf("config: background %q is not a #RRGGBB color", c.Background)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
