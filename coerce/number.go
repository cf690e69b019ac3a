package coerce

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseInt accepts base 10 integers with optional surrounding white space,
// an optional sign, leading zeros and single underscores between digits.
func parseInt(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if s == "" || !validUnderscores(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, "_", "")
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	i, err := strconv.ParseInt(sign+s, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// parseFloat accepts decimal and exponent notation plus inf, infinity and
// nan in any case, each with an optional sign.  Out of range values saturate
// to ±Inf or 0.
func parseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xXpP") || !validUnderscores(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, "_", "")
	if u := strings.TrimLeft(s, "+-"); len(s)-len(u) == 1 && strings.EqualFold(u, "nan") {
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func validUnderscores(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
