package collate

import "strings"

// CEquiv reports whether s and t are collation-equivalent: true iff
// lowercase(Normalize(s)) == lowercase(Normalize(t)). Because Normalize may
// map one code point to multiple letters (ligatures) or to the empty string
// (the Catalan middle dot), CEquiv is defined on arbitrary-length strings,
// not single characters — a single rune on one side can need several runes
// on the other to compare equal.
func CEquiv(s, t string) bool {
	return strings.ToLower(Normalize(s)) == strings.ToLower(Normalize(t))
}
