package ltwa

import (
	"strings"
	"testing"
)

func TestParseShortWords(t *testing.T) {
	input := "the\n\nand\n  of  \n"
	words, err := ParseShortWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseShortWords returned error: %v", err)
	}
	want := []string{"the", "and", "of"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}
