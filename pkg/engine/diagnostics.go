package engine

import (
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// MatchRecord describes one candidate match site considered while planning
// an abbreviation, whether or not it survived into the final output.
type MatchRecord struct {
	Start    int    `msgpack:"start"`
	End      int    `msgpack:"end"`
	Abbr     string `msgpack:"abbr"`
	Pattern  string `msgpack:"pattern"`
	Priority int    `msgpack:"priority"`
	Dropped  bool   `msgpack:"dropped"`
	Reason   string `msgpack:"reason,omitempty"`
}

// Explanation is the diagnostic record produced by Engine.Explain, carrying
// msgpack struct tags so a host process can serialize it directly across an
// IPC boundary instead of hand-rolling a wire type.
type Explanation struct {
	Title        string        `msgpack:"title"`
	Abbreviation string        `msgpack:"abbreviation"`
	Matches      []MatchRecord `msgpack:"matches"`
}

// Explain runs the same pipeline as MakeAbbreviation but additionally
// reports, for every candidate match site, its span, pattern, priority, and
// why it was or wasn't applied.
func (e *Engine) Explain(title string, languages []string) Explanation {
	s := normalizePunctuation(title)
	s = dependentTitleRe.ReplaceAllString(s, "$1")
	s = removeArticles(s)

	if isSingleWord(s, e.shortWords) {
		return Explanation{Title: s, Abbreviation: collapseWhitespace(s)}
	}

	candidates := e.PotentialPatterns(s, false)
	titleRunes := []rune(s)

	var spans []matchSpan
	var records []MatchRecord
	for _, p := range candidates {
		sites := e.matchSitesForPattern(titleRunes, p, false)
		if !p.HasLanguage(languages) {
			for _, sp := range sites {
				records = append(records, MatchRecord{
					Start: sp.Start, End: sp.End, Abbr: sp.Abbr,
					Pattern: sp.Pattern.Pattern, Priority: priority(sp),
					Dropped: true, Reason: "language filter",
				})
			}
			continue
		}
		spans = append(spans, sites...)
	}
	for i := range spans {
		spans[i].id = i
	}

	survivors := overlapResolve(spans)
	survivorIDs := make(map[int]bool, len(survivors))
	for _, sp := range survivors {
		survivorIDs[sp.id] = true
	}

	appliedIDs := make(map[int]bool, len(survivors))
	var appliedSpans []matchSpan
	for _, sp := range survivors {
		if utf8.RuneCountInString(sp.Abbr) < sp.End-sp.Start {
			appliedIDs[sp.id] = true
			appliedSpans = append(appliedSpans, sp)
		}
	}

	for _, sp := range spans {
		rec := MatchRecord{
			Start: sp.Start, End: sp.End, Abbr: sp.Abbr,
			Pattern: sp.Pattern.Pattern, Priority: priority(sp),
		}
		switch {
		case !survivorIDs[sp.id]:
			rec.Dropped = true
			rec.Reason = "overlap loss"
		case !appliedIDs[sp.id]:
			rec.Dropped = true
			rec.Reason = "non-shortening"
		}
		records = append(records, rec)
	}

	resultRunes := applySpans(titleRunes, appliedSpans)
	final := string(resultRunes)
	final = removeShortWords(final, e.shortWords)
	final = collapseWhitespace(final)

	return Explanation{Title: s, Abbreviation: final, Matches: records}
}

// MarshalBinary encodes the explanation as msgpack, so a host process can
// read it off an IPC pipe instead of parsing the human-readable CLI output.
func (ex Explanation) MarshalBinary() ([]byte, error) {
	// plainExplanation has the same fields and tags but no MarshalBinary
	// method, so msgpack encodes the struct instead of calling back here.
	type plainExplanation Explanation
	return msgpack.Marshal(plainExplanation(ex))
}

// UnmarshalExplanation decodes a msgpack-encoded Explanation, the inverse of
// Explanation.MarshalBinary.
func UnmarshalExplanation(data []byte) (Explanation, error) {
	var ex Explanation
	if err := msgpack.Unmarshal(data, &ex); err != nil {
		return Explanation{}, err
	}
	return ex, nil
}
