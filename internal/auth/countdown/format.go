package countdown

import (
	"fmt"
	"time"
)

// FormatClock renders d as "m:ss", rounding partial seconds down.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Describe renders d for humans: whole minutes above one minute, seconds
// below, and "Expired" at zero.
func Describe(d time.Duration) string {
	secs := int(d / time.Second)

	switch {
	case secs > 60:
		return plural(secs/60, "minute")
	case secs > 0:
		return plural(secs, "second")
	default:
		return "Expired"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
