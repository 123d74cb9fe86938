package testutil

import "sync"

// DeterministicClock provides a thread-safe, manually driven epoch clock for tests.
//
// It satisfies store.Clock. Time only moves when Set or Advance is called, so
// simulated timestamps such as t0 and t0+61 are reproducible and golden
// output stays byte-identical between runs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu  sync.Mutex
	now int64
}

// NewDeterministicClock creates a clock reading start epoch seconds.
func NewDeterministicClock(start int64) *DeterministicClock {
	return &DeterministicClock{now: start}
}

// Now returns the current epoch second without moving the clock.
func (c *DeterministicClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to an absolute epoch second.
func (c *DeterministicClock) Set(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ts
}

// Advance moves the clock forward by secs and returns the new time.
func (c *DeterministicClock) Advance(secs int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += secs
	return c.now
}
