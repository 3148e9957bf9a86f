package engine

import (
	"sort"
	"unicode/utf8"
)

// priority scores a match span for overlap resolution; lower wins. Patterns
// anchored at word-start dominate mid-word ones; among equally anchored
// patterns, longer matches and longer patterns are preferred; a shorter
// flectional appendix is preferred over a longer one.
//
// The 100-vs-3 weighting of startDash against endDash is deliberately
// asymmetric; it is not rebalanced here.
func priority(span matchSpan) int {
	p := span.Pattern
	score := 0
	if p.StartDash {
		score += 100
	}
	if p.EndDash {
		score += 3
	}
	appendixLen := utf8.RuneCountInString(span.Appendix)
	matchedLen := (span.End - span.Start) - appendixLen
	score += appendixLen
	score -= matchedLen
	score -= utf8.RuneCountInString(p.Pattern)
	return score
}

// overlapResolve sorts spans ascending by priority and greedily keeps a
// span only if it doesn't strictly intersect an already-kept, higher
// priority span.
//
// A dropped span never drops anything else in its turn (the `!kept[j]`
// skip below): j only eliminates k on j's own behalf, so a span beaten out
// by one higher-priority neighbor can't transitively veto a third span it
// never actually conflicts with. See DESIGN.md's Open Question decisions
// for the transitive-overlap case this affects.
func overlapResolve(spans []matchSpan) []matchSpan {
	ordered := make([]matchSpan, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(a, b int) bool {
		return priority(ordered[a]) < priority(ordered[b])
	})

	kept := make([]bool, len(ordered))
	for i := range kept {
		kept[i] = true
	}
	for j := 0; j < len(ordered); j++ {
		if !kept[j] {
			continue
		}
		for k := j + 1; k < len(ordered); k++ {
			if !kept[k] {
				continue
			}
			if ordered[j].End > ordered[k].Start && ordered[k].End > ordered[j].Start {
				kept[k] = false
			}
		}
	}

	var survivors []matchSpan
	for i, k := range kept {
		if k {
			survivors = append(survivors, ordered[i])
		}
	}
	return survivors
}

// applySpans substitutes every span's [Start, End) with its Abbr, applied
// right-to-left so earlier offsets stay valid, skipping any substitution
// that wouldn't strictly shorten the title.
func applySpans(titleRunes []rune, spans []matchSpan) []rune {
	ordered := make([]matchSpan, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Start > ordered[b].Start
	})

	result := append([]rune(nil), titleRunes...)
	for _, sp := range ordered {
		abbrRunes := []rune(sp.Abbr)
		if len(abbrRunes) >= sp.End-sp.Start {
			continue
		}
		tail := append(abbrRunes, result[sp.End:]...)
		result = append(result[:sp.Start], tail...)
	}
	return result
}
