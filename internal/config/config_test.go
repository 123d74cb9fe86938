package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every SLOG_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SLOG_CONFIG", "SLOG_ROOT", "SLOG_EXTENSION"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "csv", cfg.Extension)
	assert.Equal(t, DefaultRoot(), cfg.Root)
	assert.NotEmpty(t, cfg.Root)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "root: /data/streams\nextension: log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/streams", cfg.Root)
	assert.Equal(t, "log", cfg.Extension)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "root: /data/streams\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/streams", cfg.Root)
	assert.Equal(t, "csv", cfg.Extension)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "rooot: /typo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SLOG_ROOT", "/env/root")
	t.Setenv("SLOG_EXTENSION", ".txt")

	cfg := Default()
	FromEnv(&cfg)
	assert.Equal(t, "/env/root", cfg.Root)
	assert.Equal(t, "txt", cfg.Extension)
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "root: /from/file\nextension: log\n")

	cfg, err := Resolve(Sources{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Root)
	assert.Equal(t, "log", cfg.Extension)

	t.Setenv("SLOG_ROOT", "/from/env")
	cfg, err = Resolve(Sources{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Root)

	cfg, err = Resolve(Sources{File: path, Root: "/from/flag"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Root)
	assert.Equal(t, "log", cfg.Extension)
}

func TestResolve_ConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLOG_CONFIG", writeConfig(t, "root: /via/env/config\n"))

	cfg, err := Resolve(Sources{})
	require.NoError(t, err)
	assert.Equal(t, "/via/env/config", cfg.Root)
}

func TestResolve_InvalidExtension(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLOG_EXTENSION", "Not Valid!")

	_, err := Resolve(Sources{Root: "/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Root: "/data", Extension: "csv"}},
		{name: "empty root", cfg: Config{Root: "", Extension: "csv"}, wantErr: true},
		{name: "empty extension", cfg: Config{Root: "/data", Extension: ""}, wantErr: true},
		{name: "dotted extension", cfg: Config{Root: "/data", Extension: "tar.gz"}, wantErr: true},
		{name: "uppercase extension", cfg: Config{Root: "/data", Extension: "CSV"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
