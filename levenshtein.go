package textsim

// Levenshtein returns the minimum number of single-character insertions,
// deletions and substitutions required to change a into b.
func Levenshtein(a, b string) int {
	return GenericLevenshtein([]rune(a), []rune(b))
}

// GenericLevenshtein is Levenshtein over slices of any comparable element
// type. Equality of elements is the only property used.
func GenericLevenshtein[E comparable](a, b []E) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Only the previous and current row of the cost table are ever read,
	// so two rolling rows replace the full (n+1)x(m+1) matrix.
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
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// NormalizedLevenshtein returns a similarity score between 0.0 and 1.0 based
// on the Levenshtein distance, where 1.0 means the strings are identical.
func NormalizedLevenshtein(a, b string) float64 {
	return GenericNormalizedLevenshtein([]rune(a), []rune(b))
}

// GenericNormalizedLevenshtein is NormalizedLevenshtein over slices of any
// comparable element type. Two empty sequences score 1.0.
func GenericNormalizedLevenshtein[E comparable](a, b []E) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	return 1.0 - float64(GenericLevenshtein(a, b))/float64(max(len(a), len(b)))
}
