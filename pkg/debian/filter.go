package debian

import "strings"

// Filter keeps the names that contain substr. An empty substr
// returns names unchanged.
func Filter(names []string, substr string) []string {
	if substr == "" {
		return names
	}
	out := []string{}
	for _, n := range names {
		if strings.Contains(n, substr) {
			out = append(out, n)
		}
	}
	return out
}
