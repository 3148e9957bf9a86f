package ltwa

import (
	"strings"
	"testing"
)

func TestParseLTWABasic(t *testing.T) {
	input := "Pattern\tReplacement\tLanguages\n" +
		"geogr-\tgeogr.\teng\n" +
		"journal\tj.\teng, fre\n" +
		"\n" +
		"Index\tn.a.\tmul\n"

	patterns, lineErrors, err := ParseLTWA(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLTWA returned error: %v", err)
	}
	if len(lineErrors) != 0 {
		t.Fatalf("unexpected line errors: %v", lineErrors)
	}
	if len(patterns) != 3 {
		t.Fatalf("got %d patterns, want 3", len(patterns))
	}

	first := patterns[0]
	if first.Pattern != "geogr-" {
		t.Errorf("Pattern = %q, want %q", first.Pattern, "geogr-")
	}
	if !first.EndDash {
		t.Errorf("expected EndDash")
	}

	second := patterns[1]
	if len(second.Languages) != 2 || second.Languages[0] != "eng" || second.Languages[1] != "fre" {
		t.Errorf("Languages = %v, want [eng fre]", second.Languages)
	}

	third := patterns[2]
	if third.Replacement != NotAbbreviated {
		t.Errorf("Replacement = %q, want sentinel", third.Replacement)
	}
}

func TestParseLTWASkipsMalformedRows(t *testing.T) {
	input := "Header\tRow\tLanguages\n" +
		"okay\tok.\teng\n" +
		"too short fields only\n" +
		"xy\txy.\teng\n" // pattern too short (< 3 runes)

	patterns, lineErrors, err := ParseLTWA(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLTWA returned error: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1", len(patterns))
	}
	if len(lineErrors) != 2 {
		t.Fatalf("got %d line errors, want 2", len(lineErrors))
	}
}

func TestParseStrictFailsOnFirstBadRow(t *testing.T) {
	input := "Header\tRow\tLanguages\n" +
		"bad row\n"

	_, err := ParseStrict(strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected error")
	}
	var invalid InvalidLTWALine
	if !asInvalidLTWALine(err, &invalid) {
		t.Fatalf("expected InvalidLTWALine, got %T: %v", err, err)
	}
}

func asInvalidLTWALine(err error, target *InvalidLTWALine) bool {
	if ill, ok := err.(InvalidLTWALine); ok {
		*target = ill
		return true
	}
	return false
}

func TestParsePatternStripsParenComment(t *testing.T) {
	input := "Header\tRow\tLanguages\n" +
		"Bulletin (English ed.)\tBull.\teng\n"

	patterns, _, err := ParseLTWA(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLTWA returned error: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("got %d patterns, want 1", len(patterns))
	}
	if patterns[0].Pattern != "Bulletin" {
		t.Errorf("Pattern = %q, want %q", patterns[0].Pattern, "Bulletin")
	}
}
