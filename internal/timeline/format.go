package timeline

import "fmt"

// FormatElapsed renders seconds as H:MM:SS.
//
// Hours are unbounded and not padded. Minutes and seconds are taken from the
// total, so 3661 renders as "1:01:01". Negative totals render as "-" followed
// by the magnitude: -65 renders as "-0:01:05".
func FormatElapsed(secs int64) string {
	sign := ""
	// Work in uint64 so the magnitude of math.MinInt64 does not overflow.
	mag := uint64(secs)
	if secs < 0 {
		sign = "-"
		mag = -mag
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, mag/3600, mag/60%60, mag%60)
}
