package textsim

// OSADistance returns the Optimal String Alignment distance between a and b:
// Levenshtein plus adjacent transpositions, where no substring may be edited
// again after a transposition. DamerauLevenshtein lifts that restriction, so
// OSADistance(a, b) >= DamerauLevenshtein(a, b) always holds.
func OSADistance(a, b string) int {
	return GenericOSADistance([]rune(a), []rune(b))
}

// GenericOSADistance is OSADistance over slices of any comparable element
// type.
func GenericOSADistance[E comparable](a, b []E) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// The transposition rule reaches back two rows, so three rows rotate.
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ae := range a {
		curr[0] = i + 1
		for j, be := range b {
			cost := 1
			if ae == be {
				cost = 0
			}
			curr[j+1] = min(curr[j]+1, prev[j+1]+1, prev[j]+cost)
			if i > 0 && j > 0 && ae != be && ae == b[j-1] && be == a[i-1] {
				curr[j+1] = min(curr[j+1], prev2[j-1]+1)
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[len(b)]
}
