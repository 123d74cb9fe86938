// Command slog records timestamped notes into a stream log and replays them
// as a relative timeline.
package main

import (
	"os"

	"github.com/roach88/streamlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
