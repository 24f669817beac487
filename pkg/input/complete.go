package input

import (
	"sort"
	"strings"
)

// Complete returns the distinct candidates starting with prefix, sorted.
func Complete(prefix string, candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		if !strings.HasPrefix(c, prefix) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// CommonPrefix returns the longest prefix shared by every word.
func CommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
