// Package display turns raw feed values into the strings the cards
// show. Everything here is pure: the clock is always passed in.
package display

import (
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// absoluteFormat is the fallback once an age stops being "N hours ago".
const absoluteFormat = "Jan 2, 2006 15:04"

// freshWindow is how recent the last update must be for the "live"
// indicator.
const freshWindow = 5 * time.Second

// RelativeTime buckets the age of t into a human phrase. Used for the
// page-level "last updated" line.
func RelativeTime(t, now time.Time) string {
	s := int64(now.Sub(t).Seconds())
	switch {
	case s < 5:
		return "Just now"
	case s < 60:
		return fmt.Sprintf("%d seconds ago", s)
	case s < 3600:
		return plural(s/60, "minute")
	case s < 86400:
		return plural(s/3600, "hour")
	default:
		return t.Format(absoluteFormat)
	}
}

// CompactTimestamp is the coarser variant for per-field timestamps
// (lastSuccess/lastError), which arrive as ISO-8601 strings. A string
// that does not parse renders as "Invalid Date"; the feed occasionally
// sends those and the cards just show it.
func CompactTimestamp(raw string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "Invalid Date"
	}
	s := int64(now.Sub(t).Seconds())
	switch {
	case s < 60:
		return "Just now"
	case s < 3600:
		return fmt.Sprintf("%dm ago", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh ago", s/3600)
	default:
		return t.Format(absoluteFormat)
	}
}

// PercentString renders v with two decimals and a percent sign.
// Rounding is half-up on the decimal value, not on the float bits:
// 99.995 must come out as "100.00%", which plain %.2f cannot do since
// the nearest float64 sits just below the decimal half.
func PercentString(v float64) string {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return fmt.Sprintf("%.2f%%", v)
	}
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	hundredths := new(big.Int).Div(r.Num(), r.Denom()).Int64()
	return fmt.Sprintf("%d.%02d%%", hundredths/100, hundredths%100)
}

// LatencyString renders milliseconds as seconds with two decimals.
func LatencyString(ms int64) string {
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

// IsFresh reports whether t is strictly within the fresh window of
// now. Drives the "live" dot only.
func IsFresh(t, now time.Time) bool {
	return now.Sub(t) < freshWindow
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
