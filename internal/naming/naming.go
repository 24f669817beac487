// Package naming derives user-facing names from Go identifiers.
package naming

import (
	"strings"
	"unicode"
)

// Snake converts a CamelCase identifier into snake_case, keeping acronyms
// together: "RunTests" -> "run_tests", "HTTPServer" -> "http_server".
func Snake(ident string) string {
	runes := []rune(ident)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Words is Snake with spaces instead of underscores.
func Words(ident string) string {
	return strings.ReplaceAll(Snake(ident), "_", " ")
}
