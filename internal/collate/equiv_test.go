package collate

import "testing"

func TestCEquiv(t *testing.T) {
	testCases := []struct {
		s, t string
		want bool
	}{
		{"oe", "œ", true},
		{"OE", "Œ", true},
		{"ss", "ß", true},
		{"geographical", "geographical", true},
		{"geographical", "geography", false},
		{"Strasse", "straße", true},
	}
	for _, tc := range testCases {
		if got := CEquiv(tc.s, tc.t); got != tc.want {
			t.Errorf("CEquiv(%q, %q) = %v, want %v", tc.s, tc.t, got, tc.want)
		}
	}
}
