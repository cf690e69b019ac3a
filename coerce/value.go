package coerce

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/signadot/go-voevent/ir"
)

type Kind int

const (
	NullKind Kind = iota
	StringKind
	IntKind
	FloatKind
	BoolKind
	TimestampKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:      "Null",
		StringKind:    "String",
		IntKind:       "Integer",
		FloatKind:     "Float",
		BoolKind:      "Boolean",
		TimestampKind: "Timestamp",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Value is a tagged union; only the field matching Kind is meaningful.
// Timestamps carry no time zone and are stored in UTC.
type Value struct {
	Kind Kind

	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

func Null() Value                { return Value{} }
func FromString(s string) Value  { return Value{Kind: StringKind, Str: s} }
func FromInt(i int64) Value      { return Value{Kind: IntKind, Int: i} }
func FromFloat(f float64) Value  { return Value{Kind: FloatKind, Float: f} }
func FromBool(b bool) Value      { return Value{Kind: BoolKind, Bool: b} }
func FromTime(t time.Time) Value { return Value{Kind: TimestampKind, Time: t.UTC()} }

func (v Value) IsNull() bool { return v.Kind == NullKind }

const isoLayout = "2006-01-02T15:04:05"

// ISO renders a timestamp in ISO 8601 form without a zone.  Microseconds
// are shown only when non-zero.
func ISO(t time.Time) string {
	s := t.Format(isoLayout)
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

func (v Value) String() string {
	switch v.Kind {
	case NullKind:
		return "null"
	case StringKind:
		return v.Str
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case FloatKind:
		return ir.FormatFloat(v.Float)
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case TimestampKind:
		return ISO(v.Time)
	default:
		return "<invalid value>"
	}
}

// Equal reports whether v and o hold the same kind and payload.  NaN floats
// are equal to each other.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NullKind:
		return true
	case StringKind:
		return v.Str == o.Str
	case IntKind:
		return v.Int == o.Int
	case FloatKind:
		if math.IsNaN(v.Float) && math.IsNaN(o.Float) {
			return true
		}
		return v.Float == o.Float
	case BoolKind:
		return v.Bool == o.Bool
	case TimestampKind:
		return v.Time.Equal(o.Time)
	}
	return false
}

// IR converts v for export.  Timestamps become ISO-8601 strings.
func (v Value) IR() *ir.Node {
	switch v.Kind {
	case StringKind:
		return ir.FromString(v.Str)
	case IntKind:
		return ir.FromInt(v.Int)
	case FloatKind:
		return ir.FromFloat(v.Float)
	case BoolKind:
		return ir.FromBool(v.Bool)
	case TimestampKind:
		return ir.FromString(ISO(v.Time))
	default:
		return ir.Null()
	}
}
