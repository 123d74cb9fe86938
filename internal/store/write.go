package store

import "os"

// Append closes the active log's open entry with message and opens a new one.
//
// Exactly message + "\n" + "<now>," is written in a single append. The file
// is opened without O_CREATE: a log that vanished between discovery and
// open is reported as an I/O error, never recreated.
//
// The message is written verbatim. Embedded newlines or commas are not
// escaped.
func (s *Store) Append(message string) (Log, error) {
	active, err := s.FindActive()
	if err != nil {
		return Log{}, err
	}

	f, err := os.OpenFile(active.Path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return Log{}, newError(ErrCodeIO, "append", active.Path, err)
	}

	now := s.clock.Now()
	if _, err := f.WriteString(message + "\n" + openEntry(now)); err != nil {
		f.Close()
		return Log{}, newError(ErrCodeIO, "append", active.Path, err)
	}
	if err := f.Close(); err != nil {
		return Log{}, newError(ErrCodeIO, "append", active.Path, err)
	}

	s.logger.Debug("entry appended", "log", active.ID, "ts", now, "bytes", len(message))
	return active, nil
}
