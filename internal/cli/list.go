package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListEntry describes one log in list output.
type ListEntry struct {
	LogID  int64  `json:"log_id"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List logs, oldest first",
		Long:          `List every log in the storage root, oldest first. The active log is marked with "*".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts, cmd)
	if err != nil {
		return formatter.Fail("invalid configuration", err)
	}

	logs, err := st.List()
	if err != nil {
		return formatter.Fail("could not list logs", err)
	}

	entries := make([]ListEntry, len(logs))
	for i, l := range logs {
		entries[i] = ListEntry{LogID: l.ID, Path: l.Path, Active: i == len(logs)-1}
	}

	if opts.Format == "json" {
		return formatter.Success(entries)
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(w, "No logs found in %s.\n", st.Root())
		return nil
	}
	for _, e := range entries {
		mark := " "
		if e.Active {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %d  %s\n", mark, e.LogID, e.Path)
	}
	return nil
}
