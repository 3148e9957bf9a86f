package collate

import "strings"

// PromiscuouslyNormalize collapses s into the lossy indexing key used only
// by the prefix tree (internal/patterntree): Normalize, lowercase, fold
// every matcher-boundary character to a single space, collapse/trim
// whitespace, drop anything outside [a-z ], then strip "kh" digraphs and
// any remaining "h". It intentionally conflates many distinct strings so
// the trie stays shallow; it must never be used to decide whether a match
// is exact — that's CEquiv's and CollatingMatch's job.
func PromiscuouslyNormalize(s string) string {
	folded := strings.ToLower(Normalize(s))

	var boundaryCollapsed strings.Builder
	boundaryCollapsed.Grow(len(folded))
	lastWasSpace := false
	for _, r := range folded {
		if IsMatcherBoundary(r) {
			if !lastWasSpace {
				boundaryCollapsed.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		boundaryCollapsed.WriteRune(r)
		lastWasSpace = false
	}

	var filtered strings.Builder
	filtered.Grow(boundaryCollapsed.Len())
	for _, r := range boundaryCollapsed.String() {
		if r == ' ' || (r >= 'a' && r <= 'z') {
			filtered.WriteRune(r)
		}
	}

	trimmed := strings.TrimSpace(filtered.String())
	collapsed := collapseSpaces(trimmed)

	noKh := strings.ReplaceAll(collapsed, "kh", "")
	noH := strings.ReplaceAll(noKh, "h", "")
	return noH
}

// collapseSpaces collapses runs of spaces into a single space.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := false
	for _, r := range s {
		if r == ' ' {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
		} else {
			lastWasSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
