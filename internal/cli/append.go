package cli

import (
	"github.com/spf13/cobra"
)

// AppendResult is the JSON payload for a successful append.
type AppendResult struct {
	LogID   int64  `json:"log_id"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func runAppend(opts *RootOptions, message string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts, cmd)
	if err != nil {
		return formatter.Fail("invalid configuration", err)
	}

	l, err := st.Append(message)
	if err != nil {
		return formatter.Fail("could not log message", err)
	}

	formatter.VerboseLog("Appended to %s", l.Path)
	if opts.Format == "json" {
		return formatter.Success(AppendResult{LogID: l.ID, Path: l.Path, Message: message})
	}
	return nil
}
