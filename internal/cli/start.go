package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StartResult is the JSON payload for a newly created log.
type StartResult struct {
	LogID int64  `json:"log_id"`
	Path  string `json:"path"`
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start logging for a new stream",
		Long: `Create a new log stamped with the current time.

The new log becomes the active log: later messages are appended to it and
stamp replays it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(rootOpts, cmd)
		},
	}

	return cmd
}

func runStart(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts, cmd)
	if err != nil {
		return formatter.Fail("invalid configuration", err)
	}

	l, err := st.Start()
	if err != nil {
		return formatter.Fail("could not start log", err)
	}

	if opts.Format == "json" {
		return formatter.Success(StartResult{LogID: l.ID, Path: l.Path})
	}
	return formatter.Success(fmt.Sprintf("Created stream log at %s", l.Path))
}
