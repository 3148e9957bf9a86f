package engine

import (
	"strings"
	"testing"
)

func TestExplainReportsAppliedMatches(t *testing.T) {
	e := buildTestEngine(t)
	explanation := e.Explain("International Journal of Geographical Information Science", nil)

	if explanation.Abbreviation != "Int. J. Geogr. Inf. Sci." {
		t.Fatalf("Explanation.Abbreviation = %q, want %q", explanation.Abbreviation, "Int. J. Geogr. Inf. Sci.")
	}

	applied := 0
	for _, m := range explanation.Matches {
		if !m.Dropped {
			applied++
		}
	}
	if applied != 5 {
		t.Errorf("got %d applied matches, want 5", applied)
	}
}

func TestExplainReportsLanguageFilterDrops(t *testing.T) {
	e := buildTestEngine(t)
	explanation := e.Explain("International Journal of Geographical Information Science", []string{"fre"})

	foundLanguageDrop := false
	for _, m := range explanation.Matches {
		if m.Dropped && strings.Contains(m.Reason, "language") {
			foundLanguageDrop = true
		}
	}
	if !foundLanguageDrop {
		t.Errorf("expected at least one match dropped for language filter")
	}
}

func TestExplanationMsgpackRoundTrip(t *testing.T) {
	e := buildTestEngine(t)
	want := e.Explain("International Journal of Geographical Information Science", nil)

	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got, err := UnmarshalExplanation(data)
	if err != nil {
		t.Fatalf("UnmarshalExplanation: %v", err)
	}

	if got.Title != want.Title || got.Abbreviation != want.Abbreviation {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Matches) != len(want.Matches) {
		t.Fatalf("round trip match count = %d, want %d", len(got.Matches), len(want.Matches))
	}
}
