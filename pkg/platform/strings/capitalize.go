// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune and lower-cases the rest.
// Hyphenated slugs keep a single leading capital.
//
// Example:
//
//	Capitalize("special-attack")
//	// Returns: "Special-attack"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// JoinCapitalized capitalizes every element and joins them with sep.
// Order is preserved.
//
// Example:
//
//	JoinCapitalized([]string{"grass", "poison"}, ", ")
//	// Returns: "Grass, Poison"
func JoinCapitalized(values []string, sep string) string {
	if len(values) == 0 {
		return ""
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Capitalize(v)
	}
	return strings.Join(out, sep)
}
