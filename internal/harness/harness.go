package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/roach88/streamlog/internal/store"
	"github.com/roach88/streamlog/internal/testutil"
	"github.com/roach88/streamlog/internal/timeline"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every step expectation matched.
	Pass bool

	// Transcript records each step and its output, one line per entry.
	// Paths are reported relative to the storage root so goldens are stable.
	Transcript []string

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string
}

// AddError records an expectation failure and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

func (r *Result) record(format string, args ...any) {
	r.Transcript = append(r.Transcript, fmt.Sprintf(format, args...))
}

// Harness runs scenario steps against one storage root.
type Harness struct {
	store *store.Store
	clock *testutil.DeterministicClock
	root  string
}

// Run executes a scenario in a fresh temporary root and returns the result.
func Run(scenario *Scenario) (*Result, error) {
	root, err := os.MkdirTemp("", "streamlog-harness-")
	if err != nil {
		return nil, fmt.Errorf("failed to create root: %w", err)
	}
	defer os.RemoveAll(root)

	clock := testutil.NewDeterministicClock(scenario.Start)
	h := &Harness{
		store: store.New(root,
			store.WithExtension(scenario.Extension),
			store.WithClock(clock),
			store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
		),
		clock: clock,
		root:  root,
	}

	result := &Result{Pass: true, Transcript: []string{}, Errors: []string{}}
	for i, step := range scenario.Steps {
		if step.Advance > 0 {
			h.clock.Advance(step.Advance)
		}
		if err := h.execute(i, step, result); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}
	}
	return result, nil
}

// execute runs one step. Store failures are part of the transcript, not errors;
// only harness faults are returned.
func (h *Harness) execute(i int, step Step, result *Result) error {
	var (
		stepErr error
		lines   []string
	)

	switch step.Action {
	case ActionStart:
		var l store.Log
		l, stepErr = h.store.Start()
		if stepErr == nil {
			result.record("start @%d -> %s", h.clock.Now(), h.rel(l.Path))
		}

	case ActionAppend:
		var l store.Log
		l, stepErr = h.store.Append(step.Message)
		if stepErr == nil {
			result.record("append @%d %q -> %s", h.clock.Now(), step.Message, h.rel(l.Path))
		}

	case ActionStamp:
		var l store.Log
		l, stepErr = h.store.FindActive()
		if stepErr == nil {
			var content []byte
			content, stepErr = h.store.Read(l)
			if stepErr == nil {
				shift := timeline.ShiftOrZero(step.Shift)
				lines = slices.Collect(timeline.Lines(timeline.Replay(content, shift)))
				result.record("stamp %s shift=%q (%ds)", h.rel(l.Path), step.Shift, shift)
				for _, line := range lines {
					result.record("  %s", line)
				}
			}
		}

	case ActionTouch:
		path := filepath.Join(h.root, step.File)
		if err := os.WriteFile(path, []byte(step.Content), 0o644); err != nil {
			return err
		}
		result.record("touch %s", step.File)
	}

	if stepErr != nil {
		result.record("%s failed: %s", step.Action, store.CodeOf(stepErr))
	}

	if step.Expect != nil {
		h.check(i, step, stepErr, lines, result)
	}
	return nil
}

func (h *Harness) check(i int, step Step, stepErr error, lines []string, result *Result) {
	want := step.Expect

	got := string(store.CodeOf(stepErr))
	if stepErr != nil && got == "" {
		got = stepErr.Error()
	}
	if got != want.Error {
		result.AddError("step %d: expected error %q, got %q", i, want.Error, got)
	}

	if want.Lines != nil && !slices.Equal(want.Lines, lines) {
		result.AddError("step %d: expected lines %q, got %q", i, want.Lines, lines)
	}
	if want.Empty && len(lines) != 0 {
		result.AddError("step %d: expected no lines, got %q", i, lines)
	}

	if want.Active != 0 {
		active, err := h.store.FindActive()
		switch {
		case err != nil:
			result.AddError("step %d: expected active log %d, got %v", i, want.Active, err)
		case active.ID != want.Active:
			result.AddError("step %d: expected active log %d, got %d", i, want.Active, active.ID)
		}
	}
}

// rel reports path relative to the root, falling back to the base name.
func (h *Harness) rel(path string) string {
	if r, err := filepath.Rel(h.root, path); err == nil {
		return r
	}
	return filepath.Base(path)
}

// formatTranscript joins transcript lines with a trailing newline.
func formatTranscript(lines []string) []byte {
	var b []byte
	for _, l := range lines {
		b = append(b, l...)
		b = append(b, '\n')
	}
	return b
}
