// Package email checks address strings against a fixed, purely syntactic
// grammar. It never resolves domains.
package email

import (
	"strings"
	"unicode"
)

// Normalize trims surrounding white space and lowercases s.
// ok is false when nothing is left after trimming.
//
// Only ASCII letters and the Kelvin sign fold to ASCII. Other non-ASCII
// runes are left as they are, so the grammar rejects them.
func Normalize(s string) (normalized string, ok bool) {
	trimmed := strings.TrimFunc(s, isTrimmable)
	if trimmed == "" {
		return "", false
	}
	return strings.Map(foldCase, trimmed), true
}

// U+0085 is white space to unicode.IsSpace but is not trimmed.
func isTrimmable(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

func foldCase(r rune) rune {
	switch {
	case 'A' <= r && r <= 'Z':
		return r + 'a' - 'A'
	case r == '\u212A':
		return 'k'
	default:
		return r
	}
}

// Valid reports whether s is a well-formed address after normalization.
func Valid(s string) bool {
	normalized, ok := Normalize(s)
	if !ok {
		return false
	}
	return MatchAddress(normalized)
}

// IsValid accepts any value and reports whether it is a string holding a
// well-formed address. nil and non-string values are simply invalid.
func IsValid(input any) bool {
	switch v := input.(type) {
	case string:
		return Valid(v)
	case *string:
		if v == nil {
			return false
		}
		return Valid(*v)
	case []byte:
		return Valid(string(v))
	default:
		return false
	}
}
