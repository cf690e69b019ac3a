package ir

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders the shortest decimal for f: positional notation
// with a trailing ".0" for integral values when the decimal exponent lies in
// [-4, 16), exponent notation otherwise.  Non-finite values render as
// "NaN", "Infinity" and "-Infinity".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.LastIndexByte(e, 'e')
	exp, err := strconv.Atoi(e[i+1:])
	if err != nil {
		return e
	}
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
