package voevent

import (
	"fmt"

	"github.com/samber/lo"
)

type Role int

const (
	RoleObservation Role = iota
	RolePrediction
	RoleUtility
	RoleTest
)

var roleNames = []string{"observation", "prediction", "utility", "test"}

func Roles() []Role {
	return []Role{RoleObservation, RolePrediction, RoleUtility, RoleTest}
}

func ParseRole(v string) (Role, error) {
	i := lo.IndexOf(roleNames, v)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRole, v)
	}
	return Role(i), nil
}

func (r Role) String() string {
	d, err := r.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (r Role) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(roleNames) {
		return nil, fmt.Errorf("<err: %d is not a role>", r)
	}
	return []byte(roleNames[r]), nil
}

func (r *Role) UnmarshalText(d []byte) error {
	pr, err := ParseRole(string(d))
	if err != nil {
		return err
	}
	*r = pr
	return nil
}
