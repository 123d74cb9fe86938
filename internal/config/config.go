package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Root      string `yaml:"root" json:"root"`
	Extension string `yaml:"extension" json:"extension"`
}

// Sources names the optional inputs layered over the defaults.
type Sources struct {
	// File is a YAML config path. Empty means no file.
	File string

	// Root overrides every other source when non-empty.
	Root string
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Root:      DefaultRoot(),
		Extension: "csv",
	}
}

// Load reads a YAML config file over the defaults. If path is empty, returns defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve layers defaults, the config file, the environment and the root
// override, then validates the result.
func Resolve(src Sources) (Config, error) {
	file := src.File
	if file == "" {
		file = os.Getenv("SLOG_CONFIG")
	}

	cfg, err := Load(file)
	if err != nil {
		return Config{}, err
	}
	FromEnv(&cfg)
	if src.Root != "" {
		cfg.Root = src.Root
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
