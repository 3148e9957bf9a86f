// Package ltwa parses the List of Title Word Abbreviations into Pattern
// records: the dictionary the abbreviation engine (pkg/engine) is built
// from. Parsing is pure — it never opens a file itself, only an io.Reader
// the caller already has open, per this engine's file-I/O boundary.
package ltwa

import (
	"regexp"
	"strings"

	"github.com/iso4nlp/abbrev/internal/collate"
)

// NotAbbreviated is the internal placeholder for a pattern whose LTWA row
// marks it as "do not abbreviate" (n.a., n. a., n.a). It is an en-dash, as
// in the original dictionary convention, never an ASCII hyphen — the
// hyphen is reserved for start/end-dash pattern bodies.
const NotAbbreviated = "–"

// Pattern is the parsed form of one LTWA row.
type Pattern struct {
	// Pattern is the NFC-normalized, trimmed, comment-stripped word or
	// fragment. It is at least 3 runes long and may begin and/or end
	// with '-'.
	Pattern string
	// Replacement is the NFC-normalized abbreviation, or NotAbbreviated.
	Replacement string
	// Languages is the set of ISO-639-2/B codes this pattern was tagged
	// with. It is informational: all patterns apply to all languages
	// unless the caller explicitly filters by Languages.
	Languages []string
	// StartDash is true when Pattern begins with '-', permitting a
	// match that doesn't start at a word boundary.
	StartDash bool
	// EndDash is true when Pattern ends with '-', permitting a match
	// to consume an arbitrary flectional suffix.
	EndDash bool
	// Line is the original raw LTWA row, kept for diagnostics.
	Line string
}

// Body returns Pattern with its leading/trailing '-' stripped, honoring
// pretendDash the way pkg/engine's single-pattern matcher does: the
// trailing dash is stripped when EndDash is set or pretendDash is true, and
// likewise for the leading dash and StartDash.
func (p Pattern) Body(pretendDash bool) string {
	body := p.Pattern
	if p.StartDash || pretendDash {
		body = strings.TrimPrefix(body, "-")
	}
	if p.EndDash || pretendDash {
		body = strings.TrimSuffix(body, "-")
	}
	return body
}

// HasLanguage reports whether p applies under the given language filter.
// A nil filter, or one containing "*", disables filtering.
func (p Pattern) HasLanguage(languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	for _, l := range languages {
		if l == "*" {
			return true
		}
	}
	for _, want := range languages {
		for _, have := range p.Languages {
			if want == have {
				return true
			}
		}
	}
	return false
}

// IsBad reports whether p's normalized body does not begin with an ASCII
// letter once dashes are stripped — such patterns (e.g. beginning with an
// apostrophe) bypass the word-boundary-indexed tries and are always
// evaluated as candidates, per §4.3.
func (p Pattern) IsBad() bool {
	body := p.Body(false)
	if body == "" {
		return true
	}
	return !collate.IsASCIILetter([]rune(body)[0])
}

// notAbbreviatedForms are the raw replacement spellings (after NFC
// normalization and trimming) that collapse to NotAbbreviated.
var notAbbreviatedForms = map[string]bool{
	"n.a.":  true,
	"n. a.": true,
	"n.a":   true,
}

// parenComment matches a parenthetical comment in a pattern body; every
// occurrence is stripped, e.g. "Bulletin (English ed.)" -> "Bulletin".
var parenComment = regexp.MustCompile(`\([^)]*\)`)

// normalizePatternBody applies NFC normalization, strips parenthetical
// comments, and trims whitespace, per §6's "LTWA input format".
func normalizePatternBody(raw string) string {
	nfc := collate.NFC(raw)
	stripped := parenComment.ReplaceAllString(nfc, "")
	return strings.TrimSpace(stripped)
}

// normalizeReplacement applies NFC normalization and collapses the "not
// abbreviated" sentinel spellings to NotAbbreviated.
func normalizeReplacement(raw string) string {
	nfc := strings.TrimSpace(collate.NFC(raw))
	if notAbbreviatedForms[strings.ToLower(nfc)] {
		return NotAbbreviated
	}
	return nfc
}

func parseLanguages(raw string) []string {
	fields := strings.Split(raw, ",")
	languages := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			languages = append(languages, f)
		}
	}
	return languages
}
