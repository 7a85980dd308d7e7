package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	SceneDir       string `envconfig:"SCENE_DIR" default:"./data/scenes"`
	SessionSecret  string `envconfig:"SESSION_SECRET" default:"dev-secret-change-in-production"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	CanvasWidth    int    `envconfig:"CANVAS_WIDTH" default:"900"`
	CanvasHeight   int    `envconfig:"CANVAS_HEIGHT" default:"600"`
	MDNSEnabled    bool   `envconfig:"MDNS_ENABLED" default:"false"`
	MDNSInstance   string `envconfig:"MDNS_INSTANCE" default:"shapes"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
