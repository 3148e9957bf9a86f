// Package collate implements the limited Unicode-equivalence relation the
// LTWA patterns are matched under: diacritic folding, ligature expansion,
// and a handful of boundary-character tables. It is deliberately narrower
// than a general collation library (see golang.org/x/text/collate) — only
// the rewrites ISO-4 matching actually needs.
package collate

import "unicode/utf8"

// ligatureRewrites holds the mandatory character-by-character rewrites
// applied before decomposition. Every key is a single rune, looked up once
// per input rune, so the order of entries here is only for readability.
var ligatureRewrites = map[rune]string{
	'ß': "ss",
	'ẞ': "SS",
	'đ': "d",
	'Đ': "D",
	'ð': "d",
	'Ð': "D",
	'þ': "th",
	'Þ': "TH",
	'ħ': "h",
	'Ħ': "H",
	'ł': "l",
	'Ł': "L",
	'œ': "oe",
	'Œ': "Oe",
	'æ': "ae",
	'Æ': "Ae",
	'ı': "i",
	'ø': "o",
	'Ø': "O",
}

// droppedRunes are characters removed outright before decomposition:
// the Catalan middle dot, the modifier letter double prime, and the
// Unicode replacement character.
var droppedRunes = map[rune]bool{
	'·': true, // ·
	'ʺ': true, // ʺ
	'�': true, // �
}

// combiningMarkLow and combiningMarkHigh bound the combining-diacritical-marks
// block (U+0300-U+036F) stripped after NFKD decomposition.
const (
	combiningMarkLow  = 0x0300
	combiningMarkHigh = 0x036F
)

// isCombiningMark reports whether r falls in the combining-diacritical-marks
// block removed during normalization.
func isCombiningMark(r rune) bool {
	return r >= combiningMarkLow && r <= combiningMarkHigh
}

// boundarySet is a precomputed membership table over ASCII plus the handful
// of BMP boundary code points, avoiding per-call regexp compilation.
type boundarySet struct {
	ascii [128]bool
	extra map[rune]bool
}

func newBoundarySet(chars string, extraRunes ...rune) *boundarySet {
	bs := &boundarySet{extra: make(map[rune]bool, len(extraRunes))}
	for _, r := range chars {
		if r < 128 {
			bs.ascii[r] = true
		} else {
			bs.extra[r] = true
		}
	}
	for _, r := range extraRunes {
		if r < 128 {
			bs.ascii[r] = true
		} else {
			bs.extra[r] = true
		}
	}
	return bs
}

// Contains reports whether r is a boundary character under this table.
func (bs *boundarySet) Contains(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	if r >= 0 && r < 128 {
		return bs.ascii[r]
	}
	return bs.extra[r]
}

// matcherBoundaryChars is the broad boundary set used by the collating
// matcher and the prefix-tree indexer.
const matcherBoundaryChars = "- \t\n\r\v\f_.,:;!|=*\\/\"()#%@$+&?'"

// plannerBoundaryChars is the narrower boundary set used by the planner's
// in-title boundary test: it excludes + & ? ' so that "A&A" and "Baha'i"
// are not split at those characters.
const plannerBoundaryChars = "- \t\n\r\v\f_.,:;!|=*\\/\"()#%@$"

var (
	// MatcherBoundary is the boundary set used by the matcher/collator.
	MatcherBoundary = newBoundarySet(matcherBoundaryChars, '–', '—')
	// PlannerBoundary is the narrower boundary set used by the planner.
	PlannerBoundary = newBoundarySet(plannerBoundaryChars, '–', '—')
)

// IsMatcherBoundary reports whether r is a boundary character for matching
// and prefix-tree indexing purposes.
func IsMatcherBoundary(r rune) bool {
	return MatcherBoundary.Contains(r)
}

// IsPlannerBoundary reports whether r is a boundary character for the
// planner's in-title tests (article stripping, short-word removal).
func IsPlannerBoundary(r rune) bool {
	return PlannerBoundary.Contains(r)
}

// IsASCIILetter reports whether r is an ASCII letter, the alphabet the
// prefix tree's "new word" test and the bad-pattern classification use.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
