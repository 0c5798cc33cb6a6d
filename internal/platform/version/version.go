// Package version compares package version strings by numeric component.
//
// Installed versions come from library metadata and are often looser than
// semantic versioning ("2.31", "1.26.18.post1", "2.0.0rc1"). They are mapped
// onto canonical semver before comparison so that "2.10.0" sorts after "2.9.0".
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"depboot/internal/platform/errors"
)

// ErrUnparseable indicates a version string has no leading numeric component.
var ErrUnparseable = errors.New("unparseable version")

var (
	leadingNumeric = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)
	strictTriple   = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	preRelease     = regexp.MustCompile(`^[.-]?(alpha|beta|preview|pre|dev|rc|a|b|c)\d*`)
)

// Parse converts a loose version string into canonical semver ("v1.2.3").
// Pre-release markers after the numeric part become a semver pre-release.
func Parse(raw string) (string, error) {
	s := clean(raw)
	m := leadingNumeric.FindStringSubmatch(s)
	if m == nil {
		return "", errors.Wrapf(ErrUnparseable, "%q", raw)
	}

	parts := [3]int{}
	for i := 0; i < 3; i++ {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return "", errors.Wrapf(ErrUnparseable, "%q", raw)
		}
		parts[i] = n
	}

	canonical := fmt.Sprintf("v%d.%d.%d", parts[0], parts[1], parts[2])

	rest := strings.ToLower(s[len(m[0]):])
	if pm := preRelease.FindStringSubmatch(rest); pm != nil {
		canonical += "-" + strings.TrimLeft(pm[0], ".-")
	}

	if !semver.IsValid(canonical) {
		return "", errors.Wrapf(ErrUnparseable, "%q", raw)
	}
	return canonical, nil
}

// Compare returns -1, 0 or 1 when a is older than, equal to or newer than b.
func Compare(a, b string) (int, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return semver.Compare(ca, cb), nil
}

// AtLeast reports whether installed meets or exceeds minimum.
func AtLeast(installed, minimum string) (bool, error) {
	c, err := Compare(installed, minimum)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// IsStrict reports whether s is exactly three dot-separated numeric components.
func IsStrict(s string) bool {
	return strictTriple.MatchString(s)
}

// clean normalizes version strings for comparison.
func clean(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "v")
	v = strings.TrimPrefix(v, "V")
	return v
}
