package coerce

import (
	"errors"
	"fmt"
)

var ErrCoerce = errors.New("coercion error")

// Error reports a raw string that does not parse as its declared type.
type Error struct {
	Raw      string
	DataType string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot coerce %q to %s: %v", e.Raw, e.DataType, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrCoerce, e.Err}
}
