package textsim

// SequenceMatcher returns the Ratcliff/Obershelp ("gestalt") similarity
// between a and b, between 0.0 and 1.0 where 1.0 means the strings are
// identical. It recursively finds the longest common contiguous block,
// then matches the regions before and after it independently; the result is
// twice the total matched length divided by the combined length. Two empty
// strings score 1.0.
func SequenceMatcher(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedLen(ra, rb)) / float64(total)
}

// matchedLen returns the total length matched by the recursive
// longest-common-block decomposition of a and b. Recursion depth is bounded
// by the shorter input's length.
func matchedLen[E comparable](a, b []E) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return matchedLen(a[:ai], b[:bi]) + size + matchedLen(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common contiguous block of a and b,
// returning its start in each sequence and its length. Ties go to the block
// starting earliest in a, then earliest in b.
func longestCommonBlock[E comparable](a, b []E) (ai, bi, size int) {
	// lengths[j+1] holds the length of the common suffix ending at a[i],
	// b[j]. Scanning i then j ascending and replacing the best only on a
	// strictly longer block yields the earliest-start tie-break.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := range a {
		for j := range b {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			curr[j+1] = prev[j] + 1
			if curr[j+1] > size {
				size = curr[j+1]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}
