// Package coerce converts raw string tokens into typed values.
//
// Conversion is forgiving on purpose: malformed integers become 0 and anything
// that is not a recognised truthy literal becomes false. Nothing here returns
// an error.
package coerce

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names the target type of a coercion.
type Kind string

const (
	String  Kind = "string"
	Integer Kind = "integer"
	Boolean Kind = "boolean"
)

// truthy holds the lowercase literals that coerce to true.
var truthy = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
}

// Coerce converts raw according to kind. Unknown kinds behave as String.
func Coerce(raw string, kind Kind) any {
	switch kind {
	case Integer:
		return ParseInt(raw)
	case Boolean:
		_, ok := truthy[strings.ToLower(raw)]
		return ok
	default:
		return raw
	}
}

// ParseInt reads the leading integer of raw: leading whitespace is skipped,
// an optional sign is honoured and parsing stops at the first non-digit.
// Input without digits yields 0.
func ParseInt(raw string) int {
	s := strings.TrimLeft(raw, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range
		return 0
	}
	return n
}

// Stringify renders a default value in the raw form a source would hold.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
