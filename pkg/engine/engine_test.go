package engine

import (
	"strings"
	"testing"
)

const testLTWA = `Pattern	Replacement	Languages
International	Int.	eng
Journal	J.	eng
geograph-	geogr.	eng
Information	Inf.	eng
Science	Sci.	eng
American	Am.	eng
Chemical	Chem.	eng
Society	Soc.	eng
Proceedings-	Proc.	eng
`

const testShortWords = "of\n"

func buildTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Build(strings.NewReader(testLTWA), strings.NewReader(testShortWords))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return e
}

func abbreviate(t *testing.T, e *Engine, title string) string {
	t.Helper()
	candidates := e.PotentialPatterns(title, false)
	return e.MakeAbbreviation(title, nil, candidates)
}

func TestMakeAbbreviationEndToEnd(t *testing.T) {
	e := buildTestEngine(t)

	testCases := []struct {
		title string
		want  string
	}{
		{
			"International Journal of Geographical Information Science",
			"Int. J. Geogr. Inf. Sci.",
		},
		{
			"Journal of the American Chemical Society",
			"J. Am. Chem. Soc.",
		},
		{
			"Nature",
			"Nature",
		},
		{
			"Proceedings, Series A",
			"Proc. A",
		},
	}

	for _, tc := range testCases {
		got := abbreviate(t, e, tc.title)
		if got != tc.want {
			t.Errorf("MakeAbbreviation(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestMatchingPatternsCoversAppliedAbbreviation(t *testing.T) {
	e := buildTestEngine(t)
	title := "International Journal of Geographical Information Science"

	candidates := e.PotentialPatterns(title, false)
	matching := e.MatchingPatterns(title, nil, false, candidates)
	if len(matching) == 0 {
		t.Fatalf("expected at least one matching pattern")
	}

	found := map[string]bool{}
	for _, p := range matching {
		found[p.Pattern] = true
	}
	for _, want := range []string{"International", "Journal", "geograph-", "Information", "Science"} {
		if !found[want] {
			t.Errorf("MatchingPatterns missing pattern %q", want)
		}
	}
}

func TestMakeAbbreviationSingleWordNotAbbreviated(t *testing.T) {
	e := buildTestEngine(t)
	out := abbreviate(t, e, "Society")
	if out != "Society" {
		t.Errorf("MakeAbbreviation(%q) = %q, single word should be preserved verbatim even though it has an LTWA entry", "Society", out)
	}
}

func TestMakeAbbreviationDefaultsNilPatterns(t *testing.T) {
	e := buildTestEngine(t)
	title := "International Journal of Geographical Information Science"

	got := e.MakeAbbreviation(title, nil, nil)
	want := "Int. J. Geogr. Inf. Sci."
	if got != want {
		t.Errorf("MakeAbbreviation(%q, nil, nil) = %q, want %q", title, got, want)
	}

	precomputed := e.MakeAbbreviation(title, nil, e.PotentialPatterns(title, false))
	if got != precomputed {
		t.Errorf("MakeAbbreviation with nil patterns = %q, differs from precomputed-candidates result %q", got, precomputed)
	}
}

func TestMatchingPatternsDefaultsNilPatterns(t *testing.T) {
	e := buildTestEngine(t)
	title := "International Journal of Geographical Information Science"

	got := e.MatchingPatterns(title, nil, false, nil)
	if len(got) == 0 {
		t.Fatalf("MatchingPatterns with nil patterns returned nothing, want matches from PotentialPatterns")
	}
}

func TestMakeAbbreviationIdempotent(t *testing.T) {
	e := buildTestEngine(t)
	title := "International Journal of Geographical Information Science"
	first := abbreviate(t, e, title)
	second := abbreviate(t, e, first)
	if first != second {
		t.Errorf("MakeAbbreviation not idempotent: %q != %q", first, second)
	}
}

func TestEngineSize(t *testing.T) {
	e := buildTestEngine(t)
	if e.Size() != 9 {
		t.Errorf("Size() = %d, want 9", e.Size())
	}
}
