package ltwa

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// minPatternLen is the shortest a trimmed pattern body may be; the LTWA's
// own convention never abbreviates anything shorter than this.
const minPatternLen = 3

// ParseLTWA reads the List of Title Word Abbreviations from r and returns
// every row that parsed successfully, together with a LineError for every
// row that didn't. Its error result is non-nil only when reading r fails;
// a malformed row is reported, not fatal. The first non-blank line is treated as a header
// and skipped. It rejects patterns shorter than the package default
// minPatternLen; use ParseLTWAWithMinLen to apply a configured minimum.
func ParseLTWA(r io.Reader) ([]Pattern, []LineError, error) {
	return ParseLTWAWithMinLen(r, minPatternLen)
}

// ParseLTWAWithMinLen is ParseLTWA with the shortest-acceptable-pattern
// threshold taken from the caller (internal/config's MatchConfig.MinPatternLen)
// instead of the package default.
func ParseLTWAWithMinLen(r io.Reader, minLen int) ([]Pattern, []LineError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var patterns []Pattern
	var lineErrors []LineError

	rows := splitLines(string(data))
	seenHeader := false
	for i, row := range rows {
		lineNo := i + 1
		if strings.TrimSpace(row) == "" {
			continue
		}
		if !seenHeader {
			seenHeader = true
			continue
		}
		p, reason := parseRow(row, minLen)
		if reason != "" {
			lineErrors = append(lineErrors, LineError{Line: lineNo, Raw: row, Reason: reason})
			continue
		}
		p.Line = row
		patterns = append(patterns, p)
	}
	return patterns, lineErrors, nil
}

// ParseStrict is ParseLTWA with fail-fast semantics: the first malformed row
// aborts parsing with an InvalidLTWALine error.
func ParseStrict(r io.Reader) ([]Pattern, error) {
	patterns, lineErrors, err := ParseLTWA(r)
	if err != nil {
		return nil, err
	}
	if len(lineErrors) > 0 {
		return nil, InvalidLTWALine{LineError: lineErrors[0]}
	}
	return patterns, nil
}

// parseRow parses one non-header, non-blank LTWA row into a Pattern. reason
// is non-empty iff the row is malformed, in which case the returned Pattern
// is the zero value.
func parseRow(row string, minLen int) (Pattern, string) {
	fields := strings.Split(row, "\t")
	if len(fields) < 3 {
		return Pattern{}, fmt.Sprintf("expected 3 tab-separated fields, got %d", len(fields))
	}

	body := normalizePatternBody(fields[0])
	if utf8.RuneCountInString(body) < minLen {
		return Pattern{}, fmt.Sprintf("pattern %q shorter than %d characters", body, minLen)
	}

	p := Pattern{
		Pattern:     body,
		Replacement: normalizeReplacement(fields[1]),
		Languages:   parseLanguages(fields[2]),
		StartDash:   strings.HasPrefix(body, "-"),
		EndDash:     strings.HasSuffix(body, "-") && body != "-",
	}
	return p, ""
}
