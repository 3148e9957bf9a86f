package collate

// CollatingMatch attempts to align t as a collation-equivalent prefix of s.
// It returns two parallel slices of consecutive substrings, left and right,
// such that for every index k, CEquiv(left[k], right[k]) holds, left[k] is
// a substring of s (preserving the caller's original case/diacritics) and
// right[k] is a substring of t. ok is false if t cannot be fully aligned
// against a prefix of s.
//
// The alignment is greedy: at every step it prefers, in order, a 1-to-1
// character match, a 2-to-2 match, a 1-to-2 or 2-to-1 ligature match, and
// finally an epsilon step on either side for a character that normalizes to
// the empty string (the Catalan middle dot and friends). This order is what
// lets "œ" in a title align against "oe" in a pattern (1-to-2) and vice
// versa, while still preferring the common 1-to-1 case.
func CollatingMatch(s, t string) (left, right []string, ok bool) {
	sRunes := []rune(s)
	tRunes := []rune(t)

	si, ti := 0, 0
	for ti < len(tRunes) {
		ls, lt, stepOK := alignStep(sRunes, si, tRunes, ti)
		if !stepOK {
			return nil, nil, false
		}
		left = append(left, string(sRunes[si:si+ls]))
		right = append(right, string(tRunes[ti:ti+lt]))
		si += ls
		ti += lt
	}
	return left, right, true
}

// alignStep finds the next consuming pair of rune-counts (ls from s, lt
// from t) at positions si/ti such that the consumed slices are
// collation-equivalent, trying the priority order described in
// CollatingMatch's doc comment.
func alignStep(sRunes []rune, si int, tRunes []rune, ti int) (ls, lt int, ok bool) {
	sLeft := len(sRunes) - si
	tLeft := len(tRunes) - ti

	if sLeft >= 1 && tLeft >= 1 && CEquiv(string(sRunes[si:si+1]), string(tRunes[ti:ti+1])) {
		return 1, 1, true
	}
	if sLeft >= 2 && tLeft >= 2 && CEquiv(string(sRunes[si:si+2]), string(tRunes[ti:ti+2])) {
		return 2, 2, true
	}
	if sLeft >= 1 && tLeft >= 2 && CEquiv(string(sRunes[si:si+1]), string(tRunes[ti:ti+2])) {
		return 1, 2, true
	}
	if sLeft >= 2 && tLeft >= 1 && CEquiv(string(sRunes[si:si+2]), string(tRunes[ti:ti+1])) {
		return 2, 1, true
	}
	if sLeft >= 1 && Normalize(string(sRunes[si:si+1])) == "" {
		return 1, 0, true
	}
	if tLeft >= 1 && Normalize(string(tRunes[ti:ti+1])) == "" {
		return 0, 1, true
	}
	return 0, 0, false
}
