package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/streamlog/internal/testutil"
)

const t0 = int64(1700000000)

// createTestStore creates a store in a fresh temp root driven by a deterministic clock.
func createTestStore(t *testing.T) (*Store, *testutil.DeterministicClock) {
	t.Helper()
	clock := testutil.NewDeterministicClock(t0)
	root := filepath.Join(t.TempDir(), "StreamLogger")
	return New(root, WithClock(clock)), clock
}

// touch writes content to name under dir, creating dir if needed.
func touch(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// readLog returns the log content as a string.
func readLog(t *testing.T, s *Store, l Log) string {
	t.Helper()
	b, err := s.Read(l)
	require.NoError(t, err)
	return string(b)
}
