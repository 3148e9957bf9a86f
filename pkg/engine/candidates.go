package engine

import (
	"sort"
	"strings"

	"github.com/iso4nlp/abbrev/internal/collate"
	"github.com/iso4nlp/abbrev/pkg/ltwa"
)

// PotentialPatterns computes every pattern that might match somewhere in
// title, over-approximating via the prefix trees. Downstream matching
// (MatchingPatterns, MakeAbbreviation) re-verifies every candidate exactly.
//
// pretendDash, when true, treats every position in title as a new-word
// position, surfacing compound-word candidates (e.g. recognizing
// "engineering" inside "bioengineering").
func (e *Engine) PotentialPatterns(title string, pretendDash bool) []ltwa.Pattern {
	normalized := collate.NFC(strings.TrimSpace(title))
	key := collate.PromiscuouslyNormalize(normalized)
	runes := []rune(key)

	candidates := make([]ltwa.Pattern, 0, len(e.badPatterns))
	candidates = append(candidates, e.badPatterns...)

	for i, r := range runes {
		if r == ' ' {
			continue
		}
		suffix := string(runes[i:])
		for _, v := range e.nonprefixPatterns.Get(suffix) {
			candidates = append(candidates, v.(ltwa.Pattern))
		}
		isNewWord := pretendDash || i == 0 || runes[i-1] == ' '
		if isNewWord {
			for _, v := range e.dictPatterns.Get(suffix) {
				candidates = append(candidates, v.(ltwa.Pattern))
			}
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Line < candidates[b].Line
	})

	deduped := candidates[:0]
	seen := false
	var lastLine string
	for _, p := range candidates {
		if !seen || p.Line != lastLine {
			deduped = append(deduped, p)
			lastLine = p.Line
			seen = true
		}
	}
	return deduped
}

// MatchingPatterns filters patterns (typically the output of
// PotentialPatterns) down to those with at least one valid match site in
// title under the given language filter, sorted by the offset of their
// earliest match.
func (e *Engine) MatchingPatterns(title string, languages []string, pretendDash bool, patterns []ltwa.Pattern) []ltwa.Pattern {
	if patterns == nil {
		patterns = e.PotentialPatterns(title, pretendDash)
	}

	normalized := collate.NFC(strings.TrimSpace(title))
	titleRunes := []rune(normalized)

	type hit struct {
		pattern ltwa.Pattern
		start   int
	}
	var hits []hit
	for _, p := range patterns {
		if !p.HasLanguage(languages) {
			continue
		}
		spans := e.matchSitesForPattern(titleRunes, p, pretendDash)
		if len(spans) == 0 {
			continue
		}
		best := spans[0].Start
		for _, sp := range spans[1:] {
			if sp.Start < best {
				best = sp.Start
			}
		}
		hits = append(hits, hit{pattern: p, start: best})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].start < hits[b].start })

	result := make([]ltwa.Pattern, len(hits))
	for i, h := range hits {
		result[i] = h.pattern
	}
	return result
}
