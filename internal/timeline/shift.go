package timeline

import (
	"strconv"
	"strings"
)

// ParseShift converts "SS", "MM:SS" or "HH:MM:SS" into seconds.
//
// Each segment is a signed base-10 integer and is not range checked, so
// "90" and "1:-30" are both accepted. Empty text, a segment count other
// than 1-3, or a non-integer segment reports ok=false; callers treat that
// as a zero shift.
func ParseShift(text string) (secs int64, ok bool) {
	if text == "" {
		return 0, false
	}

	segs := strings.Split(text, ":")
	if len(segs) > 3 {
		return 0, false
	}

	for _, seg := range segs {
		n, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return 0, false
		}
		secs = secs*60 + n
	}
	return secs, true
}

// ShiftOrZero is ParseShift with the fallback applied.
func ShiftOrZero(text string) int64 {
	secs, _ := ParseShift(text)
	return secs
}
