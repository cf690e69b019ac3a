package voevent

import (
	"errors"
	"fmt"
)

var (
	ErrVOEvent                = errors.New("invalid voevent")
	ErrInvalidRoot            = fmt.Errorf("%w: bad root element", ErrVOEvent)
	ErrUnsupportedVersion     = fmt.Errorf("%w: unsupported version", ErrVOEvent)
	ErrInvalidRole            = fmt.Errorf("%w: invalid role", ErrVOEvent)
	ErrMalformedIvorn         = fmt.Errorf("%w: malformed ivorn", ErrVOEvent)
	ErrDuplicateSection       = fmt.Errorf("%w: duplicate section", ErrVOEvent)
	ErrMissingName            = fmt.Errorf("%w: missing name", ErrVOEvent)
	ErrInvalidCoordSystem     = fmt.Errorf("%w: invalid coordinate system", ErrVOEvent)
	ErrInvalidCoordinate      = fmt.Errorf("%w: invalid coordinate", ErrVOEvent)
	ErrInvalidCitationType    = fmt.Errorf("%w: invalid citation type", ErrVOEvent)
	ErrInvalidCitationElement = fmt.Errorf("%w: invalid citation element", ErrVOEvent)

	ErrAlreadyParsed = errors.New("document already parsed")
)
