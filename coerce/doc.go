// Package coerce turns raw XML strings into typed values.
//
// Coerce applies an ordered fallback chain (boolean literal, integer, float,
// timestamp, string) and, depending on the Mode, an explicit override driven
// by a declared data type such as a VOEvent Param's dataType attribute.
//
//	v, err := coerce.Coerce("1.23", coerce.AlwaysMode, "float")
//	// v.Kind == coerce.FloatKind
//
//	coerce.Default("2020-01-02 03:04:05.5")
//	// TimestampKind, 2020-01-02T03:04:05.500000
//
// Leaf coercion is lenient: every failure in the fallback chain keeps the
// value produced by the previous stage.  The only hard failure is a declared
// "int" or "float" type whose raw string does not parse, reported as an
// *Error matching ErrCoerce.
//
// All functions are pure and safe for concurrent use.
package coerce
