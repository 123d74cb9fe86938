package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/streamlog/internal/store"
	"github.com/roach88/streamlog/internal/timeline"
)

// StampOptions holds flags for the stamp command.
type StampOptions struct {
	*RootOptions
	Shift string
	LogID int64 // optional - replay a specific log instead of the active one
}

// StampLine is one replayed entry in JSON output.
type StampLine struct {
	Elapsed string `json:"elapsed"`
	Seconds int64  `json:"seconds"`
	Message string `json:"message"`
}

// StampResult is the JSON payload for a replay.
type StampResult struct {
	LogID int64       `json:"log_id"`
	Path  string      `json:"path"`
	Shift int64       `json:"shift"`
	Lines []StampLine `json:"lines"`
}

// NewStampCommand creates the stamp command.
func NewStampCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StampOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "stamp",
		Aliases: []string{"replay"},
		Short:   "Print out timestamps for a stream archive",
		Long: `Replay the active log as a timeline relative to its first entry.

Each entry prints as "H:MM:SS message". --shift moves every line forward by
a fixed offset, written as SS, MM:SS or HH:MM:SS. A shift that cannot be
parsed is ignored and the timeline starts at 0:00:00.

Examples:
  slog stamp
  slog stamp --shift 01:00:00
  slog stamp --log 1700000000 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Shift, "shift", "s", "", `shift timestamps forward by this much ("HH:MM:SS"; hours and minutes may be omitted)`)
	cmd.Flags().Int64Var(&opts.LogID, "log", 0, "replay the log with this ID instead of the active one")

	return cmd
}

func runStamp(opts *StampOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openStore(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail("invalid configuration", err)
	}

	var l store.Log
	if cmd.Flags().Changed("log") {
		l, err = st.Find(opts.LogID)
	} else {
		l, err = st.FindActive()
	}
	if err != nil {
		return formatter.Fail("could not find log", err)
	}

	content, err := st.Read(l)
	if err != nil {
		return formatter.Fail("could not read log", err)
	}

	shift, ok := timeline.ParseShift(opts.Shift)
	if !ok && opts.Shift != "" {
		formatter.VerboseLog("Ignoring unparseable shift %q", opts.Shift)
	}
	formatter.VerboseLog("Replaying %s with shift %ds", l.Path, shift)

	stamps := timeline.Replay(content, shift)

	if opts.Format == "json" {
		result := StampResult{LogID: l.ID, Path: l.Path, Shift: shift, Lines: []StampLine{}}
		for s := range stamps {
			result.Lines = append(result.Lines, StampLine{
				Elapsed: timeline.FormatElapsed(s.Elapsed),
				Seconds: s.Elapsed,
				Message: s.Message,
			})
		}
		return formatter.Success(result)
	}

	w := cmd.OutOrStdout()
	for line := range timeline.Lines(stamps) {
		fmt.Fprintln(w, line)
	}
	return nil
}
