package ir

import "errors"

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrNotObject      = errors.New("not an object")
)
