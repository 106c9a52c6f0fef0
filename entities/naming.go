package entities

import "strings"

// NormalizeName is the join key between entries, boundary features and
// imported rows: case-folded and trimmed.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
