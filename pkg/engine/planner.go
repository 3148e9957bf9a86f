package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iso4nlp/abbrev/internal/collate"
	"github.com/iso4nlp/abbrev/pkg/ltwa"
)

var (
	ellipsisRe     = regexp.MustCompile(`\.\.\.|\x{2026}`)
	commaRe        = regexp.MustCompile(`,`)
	acronymRe      = regexp.MustCompile(`((^|[A-Z,.&\-\\/])\s?[A-Z]),`)
	spaceCapRe     = regexp.MustCompile(`(\s[A-Z]),`)
	intraWordDotRe = regexp.MustCompile(`([A-Za-z]),([A-Za-z])`)
	ordinalRe      = regexp.MustCompile(`([\s\-:,&#()\\/][0-9]{1,3}),`)
	honorificRe    = regexp.MustCompile(`((^|\s)(St|Mr|Ms|Mrs|Mx|Dr|Prof|vs)),`)
	leadingJRe     = regexp.MustCompile(`^J,`)
	ampersandRe    = regexp.MustCompile(`([^A-Z0-9])[&+]([^A-Z0-9])`)

	dependentTitleRe = regexp.MustCompile(`\b(?i:Series|Serie|Ser|Part|Section|Sect|Sec|Série)[.,]?\s+([A-Z]\b|[IVXLCDM]+\b|[0-9]+)`)

	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

var articleSet = map[string]bool{
	"a": true, "an": true, "the": true, "der": true, "die": true, "das": true,
	"den": true, "dem": true, "des": true, "le": true, "la": true, "les": true,
	"el": true, "il": true, "lo": true, "los": true, "de": true, "het": true,
	"els": true, "ses": true, "es": true, "gli": true, "een": true,
	"'t": true, "'n": true, "’t": true, "’n": true,
}

var contractedArticlePrefixes = []string{
	"dell'", "dell’", "nell'", "nell’", "l'", "l’", "d'", "d’",
}

// MakeAbbreviation runs the full planner pipeline: punctuation
// normalization, dependent-title separator stripping, article removal, the
// single-word short-circuit, LTWA pattern application, short-word removal,
// and whitespace collapse.
func (e *Engine) MakeAbbreviation(title string, languages []string, patterns []ltwa.Pattern) string {
	if patterns == nil {
		patterns = e.PotentialPatterns(title, false)
	}

	s := normalizePunctuation(title)
	s = dependentTitleRe.ReplaceAllString(s, "$1")
	s = removeArticles(s)

	if isSingleWord(s, e.shortWords) {
		return collapseWhitespace(s)
	}

	titleRunes := []rune(s)
	var spans []matchSpan
	for _, p := range patterns {
		if !p.HasLanguage(languages) {
			continue
		}
		spans = append(spans, e.matchSitesForPattern(titleRunes, p, false)...)
	}
	spans = overlapResolve(spans)
	resultRunes := applySpans(titleRunes, spans)

	s = string(resultRunes)
	s = removeShortWords(s, e.shortWords)
	s = collapseWhitespace(s)
	return s
}

// normalizePunctuation implements planner step 1.
func normalizePunctuation(raw string) string {
	s := collate.NFC(strings.TrimSpace(raw))
	s = ellipsisRe.ReplaceAllString(s, "")
	s = commaRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ".", ",")
	s = acronymRe.ReplaceAllString(s, "$1.")
	s = acronymRe.ReplaceAllString(s, "$1.")
	s = spaceCapRe.ReplaceAllString(s, "$1.")
	s = intraWordDotRe.ReplaceAllString(s, "$1.$2")
	s = ordinalRe.ReplaceAllString(s, "$1.")
	s = honorificRe.ReplaceAllString(s, "$1.")
	s = leadingJRe.ReplaceAllString(s, "J.")
	s = ampersandRe.ReplaceAllString(s, "$1$2")
	return s
}

// removeArticles implements planner step 3: strips leading/after-boundary
// articles and contracted-article prefixes, honoring the planner's
// narrower boundary set (which doesn't split on + & ? ').
func removeArticles(s string) string {
	runes := []rune(s)
	var out []rune
	i := 0
	atBoundary := true
	for i < len(runes) {
		if atBoundary {
			if pre, ok := matchContractedArticle(runes, i); ok {
				i += utf8.RuneCountInString(pre)
				atBoundary = true
				continue
			}
			wordEnd := i
			for wordEnd < len(runes) && !collate.IsPlannerBoundary(runes[wordEnd]) {
				wordEnd++
			}
			word := strings.ToLower(string(runes[i:wordEnd]))
			// An article must be followed by a boundary; a lone letter at
			// the end (e.g. the "A" of "Proceedings A") is kept.
			if articleSet[word] && wordEnd < len(runes) {
				i = wordEnd
				if i < len(runes) && collate.IsPlannerBoundary(runes[i]) {
					i++
				}
				atBoundary = true
				continue
			}
		}
		out = append(out, runes[i])
		atBoundary = collate.IsPlannerBoundary(runes[i])
		i++
	}
	return string(out)
}

func matchContractedArticle(runes []rune, i int) (string, bool) {
	for _, pre := range contractedArticlePrefixes {
		preRunes := []rune(pre)
		if i+len(preRunes) > len(runes) {
			continue
		}
		candidate := strings.ToLower(string(runes[i : i+len(preRunes)]))
		if candidate == pre {
			return pre, true
		}
	}
	return "", false
}

// isSingleWord implements planner step 4's tentative check.
func isSingleWord(s string, shortWords []string) bool {
	trial := removeShortWords(s, shortWords)
	return wordCount(trial) <= 1
}

func wordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if collate.IsPlannerBoundary(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}

// removeShortWords implements planner step 6: removes words from the
// short-word list when preceded by a boundary (not at string start) and
// followed by whitespace, in either their stored or initial-capital form.
func removeShortWords(s string, shortWords []string) string {
	set := make(map[string]bool, len(shortWords)*2)
	for _, w := range shortWords {
		set[w] = true
		set[capitalizeFirst(w)] = true
	}

	runes := []rune(s)
	var out []rune
	i := 0
	for i < len(runes) {
		if i > 0 && collate.IsPlannerBoundary(runes[i-1]) {
			wordEnd := i
			for wordEnd < len(runes) && !collate.IsPlannerBoundary(runes[wordEnd]) {
				wordEnd++
			}
			if wordEnd < len(runes) && unicode.IsSpace(runes[wordEnd]) {
				word := string(runes[i:wordEnd])
				if set[word] {
					i = wordEnd
					continue
				}
			}
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}

func capitalizeFirst(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// collapseWhitespace implements planner step 7.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
}
