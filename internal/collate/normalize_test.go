package collate

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"straße", "strasse"},
		{"Œuvre", "Oeuvre"},
		{"œuvre", "oeuvre"},
		{"Æquitas", "Aequitas"},
		{"Ødipus", "Odipus"},
		{"þing", "thing"},
		{"col·lecció", "colleccio"},
		{"Barça", "Barca"},
	}
	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestNFC(t *testing.T) {
	decomposed := "é" // e + combining acute
	if got := NFC(decomposed); got != "é" {
		t.Errorf("NFC(%q) = %q, want %q", decomposed, got, "é")
	}
}
