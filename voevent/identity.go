package voevent

import (
	"fmt"
	"strings"
)

// Identity is the decomposition of an IVORN
// ivo://<authority>/<resource key>#<local id>.
type Identity struct {
	Authority   string
	ResourceKey string
	LocalID     string
}

func ParseIVORN(ivorn string) (Identity, error) {
	parts := strings.Split(ivorn, "/")
	if len(parts) != 4 {
		return Identity{}, fmt.Errorf("%w: %q has %d segments", ErrMalformedIvorn, ivorn, len(parts))
	}
	if strings.Count(parts[3], "#") != 1 {
		return Identity{}, fmt.Errorf("%w: %q needs exactly one '#'", ErrMalformedIvorn, ivorn)
	}
	key, local, _ := strings.Cut(parts[3], "#")
	return Identity{Authority: parts[2], ResourceKey: key, LocalID: local}, nil
}

func (id Identity) String() string {
	return "ivo://" + id.Authority + "/" + id.ResourceKey + "#" + id.LocalID
}
