package coerce

import (
	"errors"
	"strings"

	"github.com/signadot/go-voevent/debug"
)

var (
	errInvalidInt   = errors.New("invalid integer literal")
	errInvalidFloat = errors.New("invalid float literal")
)

// Coerce converts raw according to mode.  An empty raw string is Null in
// every mode; an empty dataType means no type was declared.
func Coerce(raw string, mode Mode, dataType string) (Value, error) {
	if raw == "" {
		return Null(), nil
	}
	v := FromString(raw)
	if mode.infers() {
		v = infer(raw)
	}
	if mode.declares() && dataType != "" {
		return declare(v, raw, dataType)
	}
	return v, nil
}

// Default coerces raw in ForceMode without a declared type, which cannot
// fail.
func Default(raw string) Value {
	v, _ := Coerce(raw, ForceMode, "")
	return v
}

func infer(raw string) Value {
	if b, ok := parseBool(raw); ok {
		return FromBool(b)
	}
	if i, ok := parseInt(raw); ok {
		return FromInt(i)
	}
	if f, ok := parseFloat(raw); ok {
		return FromFloat(f)
	}
	if t, ok := parseTimestamp(raw); ok {
		return FromTime(t)
	}
	if debug.Coerce() {
		debug.Logf("coerce: %q kept as string\n", raw)
	}
	return FromString(raw)
}

// declare applies an explicit data type on top of v.  A boolean type whose
// literal is not recognized leaves v as is.
func declare(v Value, raw, dataType string) (Value, error) {
	switch dataType {
	case "int":
		i, ok := parseInt(raw)
		if !ok {
			return Null(), &Error{Raw: raw, DataType: dataType, Err: errInvalidInt}
		}
		return FromInt(i), nil
	case "float":
		f, ok := parseFloat(raw)
		if !ok {
			return Null(), &Error{Raw: raw, DataType: dataType, Err: errInvalidFloat}
		}
		return FromFloat(f), nil
	case "string":
		return FromString(raw), nil
	case "bool", "boolean":
		if b, ok := parseBool(raw); ok {
			return FromBool(b), nil
		}
		if debug.Coerce() {
			debug.Logf("coerce: %q is not a %s literal, keeping %s\n", raw, dataType, v.Kind)
		}
		return v, nil
	default:
		return v, nil
	}
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "yes":
		return true, true
	case "false", "no":
		return false, true
	}
	return false, false
}
