package strutil

import (
	"fmt"
	"math"
	"time"
)

// HumanDuration formats d in the largest unit that fits: ms, s, m or h.
// Whole values print without decimals ("1s", "1m"); others with two ("5.90s").
// Sub-second durations are whole milliseconds.
func HumanDuration(d time.Duration) string {
	if d < 0 {
		return "-" + HumanDuration(-d)
	}

	var unit time.Duration
	var suffix string
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		unit, suffix = time.Second, "s"
	case d < time.Hour:
		unit, suffix = time.Minute, "m"
	default:
		unit, suffix = time.Hour, "h"
	}

	v := float64(d) / float64(unit)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d%s", int64(v), suffix)
	}
	return fmt.Sprintf("%.2f%s", v, suffix)
}
