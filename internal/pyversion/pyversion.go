// Package pyversion validates the interpreter version requested for a
// generated project.
package pyversion

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum is the oldest interpreter version the generated scaffolds support.
const Minimum = "3.8"

// Normalize validates version and returns it in canonical form. Two-part
// versions such as "3.11" stay two-part, three-part versions keep their
// patch number, and a leading "v" is stripped. Versions older than Minimum
// are rejected.
func Normalize(version string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	if trimmed == "" {
		return "", fmt.Errorf("python version is empty")
	}
	parsed, err := semver.NewVersion(trimmed)
	if err != nil {
		return "", fmt.Errorf("parsing python version %q: %w", version, err)
	}
	if parsed.Prerelease() != "" || parsed.Metadata() != "" {
		return "", fmt.Errorf("python version %q: prerelease builds are not supported", version)
	}
	if parsed.LessThan(semver.MustParse(Minimum)) {
		return "", fmt.Errorf("python version %q is older than the minimum supported %s", version, Minimum)
	}
	if strings.Count(trimmed, ".") >= 2 {
		return fmt.Sprintf("%d.%d.%d", parsed.Major(), parsed.Minor(), parsed.Patch()), nil
	}
	return fmt.Sprintf("%d.%d", parsed.Major(), parsed.Minor()), nil
}
