package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a MAJOR.MINOR.PATCH version. Missing trailing components read
// as zero, so "1" and "1.0" both parse to 1.0.0.
type Version struct {
	major int
	minor int
	patch int
}

// Parse reads a version such as "v1.2.3", "1.2" or "1". Pre-release and
// build suffixes ("-rc1", "+abc") are ignored.
func Parse(version string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if i := strings.IndexAny(trimmed, "-+"); i >= 0 {
		trimmed = trimmed[:i]
	}

	parts := strings.Split(trimmed, ".")
	if trimmed == "" || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version format: expected MAJOR[.MINOR[.PATCH]], got %q", version)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version component %q in %q: %w", part, version, err)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("version components must be non-negative: %q", version)
		}
		nums[i] = n
	}

	return Version{major: nums[0], minor: nums[1], patch: nums[2]}, nil
}

func (v Version) Major() int { return v.major }

// Compare returns -1, 0 or +1 depending on whether v is older than, equal
// to or newer than other.
func (v Version) Compare(other Version) int {
	switch {
	case v.major != other.major:
		return sign(v.major - other.major)
	case v.minor != other.minor:
		return sign(v.minor - other.minor)
	default:
		return sign(v.patch - other.patch)
	}
}

func (v Version) LessThan(other Version) bool { return v.Compare(other) < 0 }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
