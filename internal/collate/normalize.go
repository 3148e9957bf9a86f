package collate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies the fixed ligature/diacritic rewrites, drops the
// Catalan middle dot / double-prime / replacement character, then applies
// NFKD compatibility decomposition and strips the combining marks it
// introduces. This is the "normalize(s)" function of §4.1: a fold broader
// than exact equality but narrower than general Unicode collation.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for _, r := range s {
		if droppedRunes[r] {
			continue
		}
		if rep, ok := ligatureRewrites[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}

	decomposed := norm.NFKD.String(b.String())

	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if isCombiningMark(r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// NFC returns the canonical composition of s, used to normalize raw LTWA
// lines and input titles before anything else touches them.
func NFC(s string) string {
	return norm.NFC.String(s)
}
