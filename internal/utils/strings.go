package utils

import "strings"

// NormalizeSeatIDs trims, uppercases and de-duplicates seat identifiers
// while preserving request order. Empty entries are dropped.
func NormalizeSeatIDs(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, id := range raw {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// CityLabel shortens "New York, NY" to "New York" for chart labels.
func CityLabel(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
