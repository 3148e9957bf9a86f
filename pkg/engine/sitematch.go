package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/iso4nlp/abbrev/internal/collate"
	"github.com/iso4nlp/abbrev/pkg/ltwa"
)

// matchSpan is one candidate match site for one pattern against one title.
// id is an index assigned by the caller purely so overlap resolution and
// diagnostics can track a span by identity without requiring matchSpan
// itself to be comparable (ltwa.Pattern carries a slice field).
type matchSpan struct {
	id       int
	Start    int
	End      int
	Abbr     string
	Pattern  ltwa.Pattern
	Appendix string
}

// matchSitesForPattern enumerates every valid match site for p against
// titleRunes, per the single-pattern matching rules.
func (e *Engine) matchSitesForPattern(titleRunes []rune, p ltwa.Pattern, pretendDash bool) []matchSpan {
	body := p.Body(pretendDash)
	if body == "" {
		return nil
	}
	requiresWordStart := !p.StartDash && !pretendDash
	extendsOpen := p.EndDash || pretendDash
	appendixChars := e.cfg.Match.AppendixChars
	maxAppendix := e.cfg.Match.MaxAppendixLen

	var spans []matchSpan
	for i := 0; i < len(titleRunes); i++ {
		if requiresWordStart {
			isBoundaryBefore := i == 0 || collate.IsMatcherBoundary(titleRunes[i-1])
			if !isBoundaryBefore {
				continue
			}
		}

		left, right, ok := collate.CollatingMatch(string(titleRunes[i:]), body)
		if !ok {
			continue
		}

		matchedLen := 0
		for _, piece := range left {
			matchedLen += utf8.RuneCountInString(piece)
		}
		iend := i + matchedLen

		var appendix string
		if extendsOpen {
			for iend < len(titleRunes) && !collate.IsMatcherBoundary(titleRunes[iend]) {
				iend++
			}
		} else {
			n := 0
			for n < maxAppendix && iend+n < len(titleRunes) && strings.ContainsRune(appendixChars, titleRunes[iend+n]) {
				n++
			}
			found := false
			for l := n; l >= 0; l-- {
				pos := iend + l
				if pos >= len(titleRunes) || collate.IsMatcherBoundary(titleRunes[pos]) {
					appendix = string(titleRunes[iend : iend+l])
					iend = pos
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}

		var abbr string
		if p.Replacement == ltwa.NotAbbreviated {
			abbr = string(titleRunes[i:iend])
		} else {
			abbr = assembleAbbreviation(left, right, p.Replacement)
		}

		spans = append(spans, matchSpan{
			Start:    i,
			End:      iend,
			Abbr:     abbr,
			Pattern:  p,
			Appendix: appendix,
		})
	}
	return spans
}

// assembleAbbreviation walks the replacement template and the parallel
// alignment sequences produced by collate.CollatingMatch to build the
// emitted abbreviation, preserving the title's original case and diacritics
// wherever the replacement isn't a literal '.'.
func assembleAbbreviation(titleSlices, bodySlices []string, replacement string) string {
	repRunes := []rune(replacement)
	var sb strings.Builder
	j, ii := 0, 0
	for j < len(repRunes) {
		if repRunes[j] == '.' {
			sb.WriteRune('.')
			j++
			continue
		}
		matched := false
		for ii < len(bodySlices) {
			if collate.CEquiv(bodySlices[ii], string(repRunes[j])) {
				sb.WriteString(titleSlices[ii])
				ii++
				j++
				matched = true
				break
			}
			if j+1 < len(repRunes) && collate.CEquiv(bodySlices[ii], string(repRunes[j:j+2])) {
				sb.WriteString(titleSlices[ii])
				ii++
				j += 2
				matched = true
				break
			}
			ii++
		}
		if !matched {
			break
		}
	}
	return sb.String()
}
