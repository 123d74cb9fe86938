package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultExtension is the file extension used for logs when none is configured.
const DefaultExtension = "csv"

// Log is a handle to a single log file.
// ID is the epoch-second creation timestamp encoded in the filename.
type Log struct {
	ID   int64
	Path string
}

// Store locates, creates and appends to logs under a storage root.
// Store holds no log state between calls; every operation rescans the root.
type Store struct {
	root   string
	ext    string
	clock  Clock
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithExtension sets the log file extension (without the leading dot).
func WithExtension(ext string) Option {
	return func(s *Store) {
		if ext != "" {
			s.ext = strings.TrimPrefix(ext, ".")
		}
	}
}

// WithClock sets the clock used to stamp new logs and entries.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the structured logger for store diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store rooted at root.
// The directory does not need to exist until Start is called.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:   root,
		ext:    DefaultExtension,
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Extension returns the log file extension.
func (s *Store) Extension() string {
	return s.ext
}

// List returns every log in the root, oldest first.
//
// Entries that are directories or whose names are not <integer>.<ext> are
// skipped. A root that does not exist yet holds no logs.
func (s *Store) List() ([]Log, error) {
	entries, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, newError(ErrCodeIO, "list", s.root, err)
	}

	logs := make([]Log, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ok := s.parseName(e.Name())
		if !ok {
			continue
		}
		logs = append(logs, Log{ID: id, Path: s.pathFor(id)})
	}

	slices.SortFunc(logs, func(a, b Log) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return logs, nil
}

// FindActive returns the log with the greatest ID.
// Returns an *Error wrapping ErrNoActiveLog if the root holds no logs.
func (s *Store) FindActive() (Log, error) {
	logs, err := s.List()
	if err != nil {
		return Log{}, err
	}
	if len(logs) == 0 {
		return Log{}, newError(ErrCodeNoActiveLog, "find active", s.root, ErrNoActiveLog)
	}

	active := logs[len(logs)-1]
	s.logger.Debug("active log", "id", active.ID, "path", active.Path)
	return active, nil
}

// Find returns the log with the given ID.
// Returns an *Error wrapping ErrNoActiveLog if no such log exists.
func (s *Store) Find(id int64) (Log, error) {
	logs, err := s.List()
	if err != nil {
		return Log{}, err
	}
	for _, l := range logs {
		if l.ID == id {
			return l, nil
		}
	}
	return Log{}, newError(ErrCodeNoActiveLog, "find", s.pathFor(id), ErrNoActiveLog)
}

// Start creates a new log stamped with the current time and returns it.
//
// The root and any missing ancestors are created first. The new file holds
// only the open entry "<t0>," with no trailing newline.
func (s *Store) Start() (Log, error) {
	if s.root == "" {
		return Log{}, newError(ErrCodeConfig, "start", "", errors.New("storage root not set"))
	}

	t0 := s.clock.Now()
	path := s.pathFor(t0)
	if !utf8.ValidString(path) {
		return Log{}, newError(ErrCodeEncoding, "start", path, errors.New("could not convert path to string"))
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return Log{}, newError(ErrCodeConfig, "start", s.root, err)
	}

	// O_EXCL keeps a second start within the same second from truncating
	// the log that is already there.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Log{}, newError(ErrCodeIO, "start", path, err)
	}
	if _, err := f.WriteString(openEntry(t0)); err != nil {
		f.Close()
		return Log{}, newError(ErrCodeIO, "start", path, err)
	}
	if err := f.Close(); err != nil {
		return Log{}, newError(ErrCodeIO, "start", path, err)
	}

	s.logger.Debug("log started", "id", t0, "path", path)
	return Log{ID: t0, Path: path}, nil
}

// Read returns the full content of a log.
func (s *Store) Read(l Log) ([]byte, error) {
	b, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, newError(ErrCodeIO, "read", l.Path, err)
	}
	return b, nil
}

// parseName extracts the log ID from a file name of the form <integer>.<ext>.
func (s *Store) parseName(name string) (int64, bool) {
	prefix, ok := strings.CutSuffix(name, "."+s.ext)
	if !ok || prefix == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Store) pathFor(id int64) string {
	return filepath.Join(s.root, fmt.Sprintf("%d.%s", id, s.ext))
}

// openEntry renders the placeholder entry that terminates every log.
func openEntry(ts int64) string {
	return strconv.FormatInt(ts, 10) + ","
}
