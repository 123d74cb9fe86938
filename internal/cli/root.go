package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/streamlog/internal/config"
	"github.com/roach88/streamlog/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Root       string // storage root override
	ConfigFile string

	// Clock overrides the store clock (for testing).
	// If nil, the system clock is used.
	Clock store.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the slog CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slog <message>",
		Short: "Stream logger - timestamp notes while you stream",
		Long: `Stream logger records short timestamped notes into the current log
and replays them as a timeline relative to when the log started.

Examples:
  slog start
  slog "switched to the parser bug"
  slog stamp --shift 00:02:30`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !slices.Contains(ValidFormats, opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				_ = newFormatter(opts, cmd).Error(ErrCodeUsage, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				f := newFormatter(opts, cmd)
				_ = f.Error(ErrCodeUsage, "Provide a log message.", nil)
				if opts.Format != "json" {
					_ = cmd.Usage()
				}
				return NewExitError(ExitCommandError, "missing log message")
			}
			return runAppend(opts, args[0], cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Root, "root", "", "directory holding the logs (default: per-OS application data directory)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "YAML config file (default: $SLOG_CONFIG)")

	// Add subcommands
	cmd.AddCommand(NewStartCommand(opts))
	cmd.AddCommand(NewStampCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors already reported by a command are not printed again.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	// Cobra's own failures (unknown flag, too many args) have not been shown yet.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	return exitErr.Code
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// openStore resolves configuration and builds a store with a stderr logger.
func openStore(opts *RootOptions, cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Resolve(config.Sources{File: opts.ConfigFile, Root: opts.Root})
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	return store.New(cfg.Root,
		store.WithExtension(cfg.Extension),
		store.WithClock(opts.Clock),
		store.WithLogger(logger),
	), nil
}
