package coerce

import (
	"errors"
	"fmt"
)

// Mode selects how raw strings are converted.
type Mode int

const (
	// ForceMode always infers a type and ignores any declared type.
	ForceMode Mode = iota
	// AlwaysMode infers a type, then lets a declared type override it.
	AlwaysMode
	// GivenMode only converts when a type is declared.
	GivenMode
	// NoneMode never converts.
	NoneMode
)

var ErrBadMode = errors.New("bad conversion mode")

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"force":  ForceMode,
		"always": AlwaysMode,
		"given":  GivenMode,
		"none":   NoneMode,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ForceMode:
		return []byte("force"), nil
	case AlwaysMode:
		return []byte("always"), nil
	case GivenMode:
		return []byte("given"), nil
	case NoneMode:
		return []byte("none"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a conversion mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

func (m Mode) infers() bool  { return m == ForceMode || m == AlwaysMode }
func (m Mode) declares() bool { return m == AlwaysMode || m == GivenMode }
