package migrations

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVersion returns the major component of "v2.1.0", "2.1" or "2"
func ParseVersion(versionStr string) (float64, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(versionStr), "v")
	major, _, _ := strings.Cut(clean, ".")
	if major == "" {
		return 0, fmt.Errorf("invalid version format: %q", versionStr)
	}
	v, err := strconv.ParseFloat(major, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid major version: %q", major)
	}
	return v, nil
}
