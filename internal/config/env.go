package config

import (
	"os"
	"strings"
)

// FromEnv overlays SLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SLOG_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("SLOG_EXTENSION"); v != "" {
		cfg.Extension = strings.TrimPrefix(v, ".")
	}
}
