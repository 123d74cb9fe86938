// Package config resolves where streamlog keeps its logs.
//
// Resolution order, later sources winning:
//
//  1. Default(): the per-OS application data directory and the "csv" extension
//  2. a YAML file named by --config or SLOG_CONFIG
//  3. SLOG_ROOT and SLOG_EXTENSION
//  4. the --root flag
//
// The merged result is checked against an embedded CUE schema before use.
//
// Example:
//
//	cfg, err := config.Resolve(config.Sources{File: os.Getenv("SLOG_CONFIG")})
//	if err != nil {
//	    return err
//	}
//	st := store.New(cfg.Root, store.WithExtension(cfg.Extension))
package config
