package cli

import (
	"bytes"
	"testing"

	"github.com/roach88/streamlog/internal/testutil"
)

const t0 = int64(1700000000)

// testEnv runs CLI commands against a temp root with a deterministic clock.
type testEnv struct {
	t     *testing.T
	root  string
	clock *testutil.DeterministicClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, k := range []string{"SLOG_CONFIG", "SLOG_ROOT", "SLOG_EXTENSION"} {
		t.Setenv(k, "")
	}
	return &testEnv{
		t:     t,
		root:  t.TempDir(),
		clock: testutil.NewDeterministicClock(t0),
	}
}

// run executes the root command with --root set and returns stdout, stderr and the error.
func (e *testEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCommand(&RootOptions{Clock: e.clock})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--root", e.root}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
