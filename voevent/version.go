package voevent

import (
	"fmt"
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
}

const supportedMajor = 2

// ParseVersion reads a dot separated version.  Only the first two
// components are kept, and the minor version defaults to 0.
func ParseVersion(v string) (Version, error) {
	if v == "" {
		return Version{}, fmt.Errorf("%w: no version", ErrUnsupportedVersion)
	}
	parts := strings.Split(v, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
		}
		nums[i] = n
	}
	res := Version{Major: nums[0]}
	if len(nums) > 1 {
		res.Minor = nums[1]
	}
	if res.Major != supportedMajor {
		return Version{}, fmt.Errorf("%w: %q, only major version %d is supported", ErrUnsupportedVersion, v, supportedMajor)
	}
	return res, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
