package domain

import (
	"strconv"
	"strings"
)

// IdentifierKind tells which variant an Identifier holds.
type IdentifierKind int

const (
	IdentifierName IdentifierKind = iota
	IdentifierNumeric
)

// Identifier addresses one catalog entry, either by numeric id or by its
// lower-case name slug. The zero value is the empty name.
type Identifier struct {
	kind   IdentifierKind
	number int
	name   string
}

// NumericIdentifier builds an identifier addressing entry n.
func NumericIdentifier(n int) Identifier {
	return Identifier{kind: IdentifierNumeric, number: n}
}

// NameIdentifier builds an identifier addressing an entry by name. The name is
// stored as given; use ResolveIdentifier to normalize user input.
func NameIdentifier(name string) Identifier {
	return Identifier{kind: IdentifierName, name: name}
}

// ResolveIdentifier normalizes raw user text into an Identifier.
//
// The text is trimmed and lower-cased. A result made only of ASCII digits is a
// numeric id (leading zeros and "0" included, no upper bound); anything else,
// the empty string included, is a name. Digit strings too large for an int
// stay names: the catalog rejects both forms the same way.
//
// Resolution never fails; an unknown identifier surfaces later as a missing
// catalog entry.
func ResolveIdentifier(text string) Identifier {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if isDecimal(normalized) {
		if n, err := strconv.Atoi(normalized); err == nil {
			return NumericIdentifier(n)
		}
	}
	return NameIdentifier(normalized)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Kind returns the variant held by the identifier.
func (i Identifier) Kind() IdentifierKind {
	return i.kind
}

// IsNumeric is true for identifiers built from digits.
func (i Identifier) IsNumeric() bool {
	return i.kind == IdentifierNumeric
}

// Number returns the numeric id and whether the identifier is numeric.
func (i Identifier) Number() (int, bool) {
	return i.number, i.kind == IdentifierNumeric
}

// Name returns the name slug and whether the identifier is a name.
func (i Identifier) Name() (string, bool) {
	return i.name, i.kind == IdentifierName
}

// String renders the identifier as the catalog path segment: the decimal id
// or the name slug.
func (i Identifier) String() string {
	if i.kind == IdentifierNumeric {
		return strconv.Itoa(i.number)
	}
	return i.name
}
