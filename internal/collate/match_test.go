package collate

import (
	"reflect"
	"testing"
)

func TestCollatingMatchSimple(t *testing.T) {
	left, right, ok := CollatingMatch("Geographical", "geogr")
	if !ok {
		t.Fatalf("expected match")
	}
	want := []string{"G", "e", "o", "g", "r"}
	if !reflect.DeepEqual(left, want) {
		t.Errorf("left = %v, want %v", left, want)
	}
	if len(right) != len(left) {
		t.Errorf("right length = %d, want %d", len(right), len(left))
	}
}

func TestCollatingMatchLigature(t *testing.T) {
	// "œuvre" in a title should align against the pattern body "oeuvre"
	left, _, ok := CollatingMatch("œuvre", "oeuvre")
	if !ok {
		t.Fatalf("expected ligature match")
	}
	if left[0] != "œ" {
		t.Errorf("first aligned slice = %q, want %q", left[0], "œ")
	}
}

func TestCollatingMatchFailure(t *testing.T) {
	_, _, ok := CollatingMatch("Journal", "xyz")
	if ok {
		t.Errorf("expected no match")
	}
}

func TestCollatingMatchMiddleDot(t *testing.T) {
	// the middle dot normalizes to empty, so it is absorbed into the
	// alignment (here by the 2-to-1 step pairing "·l" with "l") when
	// aligning against a pattern with no dot.
	left, right, ok := CollatingMatch("col·lecció", "collecc")
	if !ok {
		t.Fatalf("expected match skipping middle dot")
	}
	if len(left) != len(right) {
		t.Errorf("left/right length mismatch: %d vs %d", len(left), len(right))
	}
}
