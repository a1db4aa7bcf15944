package connect

import (
	"fmt"
	"strconv"
	"strings"
)

// _devVersion is what servers built from source report. It always passes the
// version gate.
const _devVersion = "latest"

// VersionSatisfies reports whether a server-reported version meets the
// configured minimum. Versions are calendar-style "major.minor" strings,
// compared numerically field by field.
func VersionSatisfies(found, minimum string) (bool, error) {
	if found == _devVersion {
		return true, nil
	}
	foundMajor, foundMinor, err := parseVersion(found)
	if err != nil {
		return false, err
	}
	minMajor, minMinor, err := parseVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("bad minimum version: %w", err)
	}
	if foundMajor != minMajor {
		return foundMajor > minMajor, nil
	}
	return foundMinor >= minMinor, nil
}

func parseVersion(v string) (major, minor int, err error) {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("version %q is not in major.minor form", v)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q has a non-numeric major field", v)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("version %q has a non-numeric minor field", v)
	}
	return major, minor, nil
}
