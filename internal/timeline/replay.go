package timeline

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Entry is one parsed "timestamp,message" line.
// HasMessage is false when the line carries no comma.
type Entry struct {
	Timestamp  int64
	Message    string
	HasMessage bool
}

// Stamp is an entry positioned on the relative timeline.
type Stamp struct {
	Timestamp int64
	Elapsed   int64
	Message   string
}

// String renders the stamp as "H:MM:SS message".
func (s Stamp) String() string {
	return FormatElapsed(s.Elapsed) + " " + s.Message
}

// ParseEntry splits line on its first comma.
// Later commas belong to the message. ok is false if the timestamp part is
// not a base-10 integer.
func ParseEntry(line string) (e Entry, ok bool) {
	ts, msg, found := strings.Cut(line, ",")
	n, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Timestamp: n, Message: msg, HasMessage: found}, true
}

// Replay yields one Stamp per completed entry in content.
//
// The first line with a parseable timestamp is the reference point, even if
// that line has no message. Each stamp's Elapsed is t - ref + shift. Lines
// without a parseable timestamp or without a message are skipped, as is the
// trailing open entry ("t," with no newline after it).
//
// The returned sequence is computed lazily and may be ranged over any number
// of times with identical results.
func Replay(content []byte, shift int64) iter.Seq[Stamp] {
	text := decode(content)

	return func(yield func(Stamp) bool) {
		var (
			ref    int64
			hasRef bool
		)
		rest := text
		for rest != "" {
			line, tail, terminated := strings.Cut(rest, "\n")
			rest = tail
			line = strings.TrimSuffix(line, "\r")

			e, ok := ParseEntry(line)
			if !ok {
				continue
			}
			if !hasRef {
				ref, hasRef = e.Timestamp, true
			}
			if !e.HasMessage || (!terminated && e.Message == "") {
				continue
			}

			s := Stamp{
				Timestamp: e.Timestamp,
				Elapsed:   e.Timestamp - ref + shift,
				Message:   e.Message,
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Lines adapts a stamp sequence to its formatted lines.
func Lines(stamps iter.Seq[Stamp]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range stamps {
			if !yield(s.String()) {
				return
			}
		}
	}
}

// decode reads content as UTF-8, replacing invalid bytes with U+FFFD.
func decode(content []byte) string {
	b, err := unicode.UTF8.NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(b)
}
