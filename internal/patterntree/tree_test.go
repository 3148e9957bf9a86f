package patterntree

import "testing"

func TestTreeGetReturnsExactInsertedValue(t *testing.T) {
	tree := New(5)
	tree.Add("geogr", "Geographical")

	results := tree.Get("geographical")
	if !containsString(results, "Geographical") {
		t.Fatalf("Get(%q) = %v, want to contain %q", "geographical", results, "Geographical")
	}
}

func TestTreeGetMissesNonPrefix(t *testing.T) {
	// An unsplit bucket is returned whole (a permitted false positive), so
	// force a split: with maxNodeSize 1 the second Add pushes both keys into
	// their own children and "biology" only reaches the 'b' child.
	tree := New(1)
	tree.Add("geogr", "Geographical")
	tree.Add("bio", "Biological")

	results := tree.Get("biology")
	if containsString(results, "Geographical") {
		t.Fatalf("Get(%q) unexpectedly returned %q", "biology", "Geographical")
	}
}

func TestTreeSplitsAfterOverflow(t *testing.T) {
	tree := New(2)
	tree.Add("aa", "v1")
	tree.Add("ab", "v2")
	tree.Add("ac", "v3")
	tree.Add("ad", "v4")

	if !tree.root.split {
		t.Fatalf("expected root to split after exceeding maxNodeSize")
	}

	for _, key := range []string{"aa", "ab", "ac", "ad"} {
		results := tree.Get(key)
		if len(results) == 0 {
			t.Errorf("Get(%q) returned no results after split", key)
		}
	}
}

func TestTreeNeverFalseNegative(t *testing.T) {
	tree := New(3)
	keys := []string{"a", "ab", "abc", "abcd", "b", "ba", "z"}
	for i, k := range keys {
		tree.Add(k, i)
	}
	for i, k := range keys {
		results := tree.Get(k)
		if !containsInt(results, i) {
			t.Errorf("Get(%q) missing value %d that was inserted under prefix %q", k, i, k)
		}
	}
}

func containsString(values []any, want string) bool {
	for _, v := range values {
		if s, ok := v.(string); ok && s == want {
			return true
		}
	}
	return false
}

func containsInt(values []any, want int) bool {
	for _, v := range values {
		if n, ok := v.(int); ok && n == want {
			return true
		}
	}
	return false
}
