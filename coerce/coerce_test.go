package coerce

import (
	"errors"
	"math"
	"testing"
	"time"
)

func ts(s string) Value {
	t, err := time.Parse("2006-01-02T15:04:05.999999", s)
	if err != nil {
		panic(err)
	}
	return FromTime(t)
}

func TestCoerceForce(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"", Null()},
		{"42", FromInt(42)},
		{"007", FromInt(7)},
		{"-3", FromInt(-3)},
		{" 12 ", FromInt(12)},
		{"1_000", FromInt(1000)},
		{"True", FromBool(true)},
		{"yes", FromBool(true)},
		{"YES", FromBool(true)},
		{"no", FromBool(false)},
		{"False", FromBool(false)},
		{"1.23", FromFloat(1.23)},
		{"1e3", FromFloat(1000)},
		{".5", FromFloat(0.5)},
		{"-inf", FromFloat(math.Inf(-1))},
		{"nan", FromFloat(math.NaN())},
		{"-nan", FromFloat(math.NaN())},
		{"+NaN", FromFloat(math.NaN())},
		{"--nan", FromString("--nan")},
		{"2020-01-02 03:04:05.5", ts("2020-01-02T03:04:05.5")},
		{"2020-01-02T03:04:05", ts("2020-01-02T03:04:05")},
		{"2020-01-02T03:04:05.123456", ts("2020-01-02T03:04:05.123456")},
		{"2020-1-2 3:04:05", ts("2020-01-02T03:04:05")},
		{"not-a-date", FromString("not-a-date")},
		{"2020-13-02T03:04:05", FromString("2020-13-02T03:04:05")},
		{"2020-01-02T03:04:05.5Z", FromString("2020-01-02T03:04:05.5Z")},
		{"0x10", FromString("0x10")},
		{"1__0", FromString("1__0")},
		{"ivo://example.org/test#1", FromString("ivo://example.org/test#1")},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.in, ForceMode, "")
		if err != nil {
			t.Errorf("Coerce(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Coerce(%q) = %s(%s), want %s(%s)", tt.in, got.Kind, got, tt.want.Kind, tt.want)
		}
	}
}

func TestCoerceForceIgnoresDataType(t *testing.T) {
	got, err := Coerce("False", ForceMode, "string")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(FromBool(false)) {
		t.Errorf("got %s(%s)", got.Kind, got)
	}
	// int declared type is not applied in force mode
	got, err = Coerce("abc", ForceMode, "int")
	if err != nil || !got.Equal(FromString("abc")) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestCoerceDeclared(t *testing.T) {
	tests := []struct {
		in, dataType string
		mode         Mode
		want         Value
	}{
		{"1.23", "float", AlwaysMode, FromFloat(1.23)},
		{"1.23", "float", GivenMode, FromFloat(1.23)},
		{"12", "float", GivenMode, FromFloat(12)},
		{"12", "int", GivenMode, FromInt(12)},
		{"False", "string", AlwaysMode, FromString("False")},
		{"12", "string", AlwaysMode, FromString("12")},
		{"yes", "boolean", GivenMode, FromBool(true)},
		{"No", "bool", AlwaysMode, FromBool(false)},
		// unmatched boolean literal keeps the prior value
		{"maybe", "bool", GivenMode, FromString("maybe")},
		{"1", "bool", AlwaysMode, FromInt(1)},
		// no declared type
		{"12", "", GivenMode, FromString("12")},
		{"12", "", AlwaysMode, FromInt(12)},
		// unknown declared type keeps the prior value
		{"12", "double", GivenMode, FromString("12")},
		{"12", "double", AlwaysMode, FromInt(12)},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.in, tt.mode, tt.dataType)
		if err != nil {
			t.Errorf("Coerce(%q, %s, %q): %v", tt.in, tt.mode, tt.dataType, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Coerce(%q, %s, %q) = %s(%s), want %s(%s)",
				tt.in, tt.mode, tt.dataType, got.Kind, got, tt.want.Kind, tt.want)
		}
	}
}

func TestCoerceDeclaredFailure(t *testing.T) {
	for _, tt := range []struct{ in, dataType string }{
		{"abc", "int"},
		{"1.5", "int"},
		{"abc", "float"},
	} {
		for _, mode := range []Mode{AlwaysMode, GivenMode} {
			_, err := Coerce(tt.in, mode, tt.dataType)
			if !errors.Is(err, ErrCoerce) {
				t.Errorf("Coerce(%q, %s, %q): expected ErrCoerce, got %v", tt.in, mode, tt.dataType, err)
			}
			var cErr *Error
			if !errors.As(err, &cErr) || cErr.Raw != tt.in || cErr.DataType != tt.dataType {
				t.Errorf("unexpected error detail %#v", err)
			}
		}
	}
}

func TestCoerceNone(t *testing.T) {
	got, err := Coerce("42", NoneMode, "int")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(FromString("42")) {
		t.Errorf("got %s(%s)", got.Kind, got)
	}
	got, _ = Coerce("", NoneMode, "")
	if !got.IsNull() {
		t.Errorf("expected null, got %s", got.Kind)
	}
}

func TestDefault(t *testing.T) {
	if got := Default("0.9"); !got.Equal(FromFloat(0.9)) {
		t.Errorf("got %s(%s)", got.Kind, got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ForceMode, AlwaysMode, GivenMode, NoneMode} {
		pm, err := ParseMode(m.String())
		if err != nil || pm != m {
			t.Errorf("round trip of %s: %v %v", m, pm, err)
		}
	}
	if _, err := ParseMode("sometimes"); !errors.Is(err, ErrBadMode) {
		t.Errorf("expected ErrBadMode, got %v", err)
	}
}
