package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform data directory.
const AppDirName = "StreamLogger"

// DefaultRoot returns the default storage root for the host OS.
func DefaultRoot() string {
	return defaultRootFor(runtime.GOOS, os.Getenv)
}

func defaultRootFor(goos string, getenv func(string) string) string {
	home := getenv("HOME")
	if home == "" {
		home = "/tmp"
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", AppDirName)
	case "windows":
		base := getenv("LOCALAPPDATA")
		if base == "" {
			base = getenv("TEMP")
		}
		if base == "" {
			base = "."
		}
		return filepath.Join(base, AppDirName)
	case "linux":
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName)
		}
		return filepath.Join(home, ".local", "share", AppDirName)
	default:
		return "."
	}
}
