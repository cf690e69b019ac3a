package coerce

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const timestampLayout = "2006-1-2T15:4:5"

// parseTimestamp reads "YYYY-MM-DD[T| ]HH:MM:SS[.fraction]".  The fraction
// is added as an offset rounded to the microsecond.
func parseTimestamp(raw string) (time.Time, bool) {
	date, frac, hasFrac := strings.Cut(raw, ".")
	if parts := splitOnceSpace(date); len(parts) == 2 {
		date = parts[0] + "T" + parts[1]
	}
	t, err := time.Parse(timestampLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	if !hasFrac {
		return t, true
	}
	f, ok := parseFloat("0." + frac)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return time.Time{}, false
	}
	return t.Add(time.Duration(math.Round(f*1e6)) * time.Microsecond), true
}

// splitOnceSpace splits s at its first run of white space after dropping
// leading white space.
func splitOnceSpace(s string) []string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return []string{s}
	}
	rest := strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	if rest == "" {
		return []string{s[:i]}
	}
	return []string{s[:i], rest}
}
