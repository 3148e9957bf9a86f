package ltwa

import (
	"io"
	"strings"

	"github.com/iso4nlp/abbrev/internal/collate"
)

// ParseShortWords reads one short word per line from r and returns them
// NFC-normalized, trimmed, and with empty lines skipped. Short words are
// articles and other function words (e.g. "the", "and", "de") the planner
// removes from the title after LTWA substitution, regardless of the LTWA
// dictionary; before matching they are removed only from a trial copy used
// for the single-word check.
func ParseShortWords(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, row := range splitLines(string(data)) {
		word := strings.TrimSpace(collate.NFC(row))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
