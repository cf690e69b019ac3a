package xmlnode

import "errors"

var (
	ErrLoad   = errors.New("cannot load xml")
	ErrNoRoot = errors.New("xml document has no root element")
)
