package voevent

import (
	"log/slog"

	"github.com/signadot/go-voevent/coerce"
)

type parseOpts struct {
	conversion coerce.Mode
	logger     *slog.Logger
}

type Option func(*parseOpts)

// WithConversion sets the coercion mode applied to What Params.  The
// default is coerce.ForceMode.
func WithConversion(m coerce.Mode) Option {
	return func(o *parseOpts) { o.conversion = m }
}

// WithLogger makes Parse emit a Debug record per extracted section.
func WithLogger(l *slog.Logger) Option {
	return func(o *parseOpts) { o.logger = l }
}
