package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Background != "#FFFFFF" {
		t.Errorf("Background = %q", cfg.Background)
	}
	if len(cfg.Origins) != 2 {
		t.Errorf("Origins = %v", cfg.Origins)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CURVEKIT_ADDR", "127.0.0.1:9000")
	t.Setenv("CURVEKIT_WIDTH", "320")
	t.Setenv("CURVEKIT_HEIGHT", "240")
	t.Setenv("CURVEKIT_LOG_LEVEL", "debug")
	t.Setenv("CURVEKIT_ORIGINS", "example.com")
	t.Setenv("CURVEKIT_SEED", "99")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.Width != 320 || cfg.Height != 240 || cfg.Seed != 99 {
		t.Errorf("cfg = %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", l)
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "example.com" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"width", "CURVEKIT_WIDTH", "-1"},
		{"width not a number", "CURVEKIT_WIDTH", "wide"},
		{"background", "CURVEKIT_BACKGROUND", "white"},
		{"log level", "CURVEKIT_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded", tt.key, tt.value)
			}
		})
	}
}
