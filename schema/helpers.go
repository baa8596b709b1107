package schema

import (
	"fmt"
	"math"
	"strings"
)

// RoundRelGain rounds a relative gain to 6 decimal digits, the precision
// carried in ranked output.
func RoundRelGain(rel float64) float64 {
	return math.Round(rel*1e6) / 1e6
}

// SplitRepoName splits "owner/name" into its two components.
// Returns an error for anything that is not exactly owner/name.
func SplitRepoName(full string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(full), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q (expected owner/name)", full)
	}
	return parts[0], parts[1], nil
}

// FormatStars renders a star count compactly, e.g. 15400 -> "15.4k".
func FormatStars(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fm", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
