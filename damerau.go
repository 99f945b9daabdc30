package textsim

// DamerauLevenshtein returns the Damerau-Levenshtein distance between a and
// b: the minimum number of insertions, deletions, substitutions and adjacent
// transpositions required to change one into the other. Unlike OSADistance,
// substrings may be edited again after a transposition, and the triangle
// inequality holds.
func DamerauLevenshtein(a, b string) int {
	return GenericDamerauLevenshtein([]rune(a), []rune(b))
}

// GenericDamerauLevenshtein is DamerauLevenshtein over slices of any
// comparable element type.
func GenericDamerauLevenshtein[E comparable](a, b []E) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	// Lowrance-Wagner cost table with a one-cell sentinel border. lastRow
	// tracks the last row each element of a occurred in; matchCol tracks the
	// last column of the current row where the elements matched. Together
	// they locate the prior occurrence pair (k, l) a transposition can reach
	// back to, at cost d[k-1][l-1] + (i-k-1) + 1 + (j-l-1).
	inf := n + m
	w := m + 2
	d := make([]int, (n+2)*(m+2))
	d[0] = inf
	for i := 0; i <= n; i++ {
		d[(i+1)*w] = inf
		d[(i+1)*w+1] = i
	}
	for j := 0; j <= m; j++ {
		d[j+1] = inf
		d[w+j+1] = j
	}

	lastRow := make(map[E]int, min(n, 64))
	for i := 1; i <= n; i++ {
		matchCol := 0
		for j := 1; j <= m; j++ {
			k := lastRow[b[j-1]]
			l := matchCol

			insertion := d[i*w+j+1] + 1
			deletion := d[(i+1)*w+j] + 1
			transposition := d[k*w+l] + (i - k - 1) + 1 + (j - l - 1)
			substitution := d[i*w+j] + 1
			if a[i-1] == b[j-1] {
				matchCol = j
				substitution--
			}

			d[(i+1)*w+j+1] = min(substitution, insertion, deletion, transposition)
		}
		lastRow[a[i-1]] = i
	}
	return d[(n+1)*w+m+1]
}

// NormalizedDamerauLevenshtein returns a similarity score between 0.0 and
// 1.0 based on the Damerau-Levenshtein distance, where 1.0 means the strings
// are identical.
func NormalizedDamerauLevenshtein(a, b string) float64 {
	return GenericNormalizedDamerauLevenshtein([]rune(a), []rune(b))
}

// GenericNormalizedDamerauLevenshtein is NormalizedDamerauLevenshtein over
// slices of any comparable element type. Two empty sequences score 1.0.
func GenericNormalizedDamerauLevenshtein[E comparable](a, b []E) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	return 1.0 - float64(GenericDamerauLevenshtein(a, b))/float64(max(len(a), len(b)))
}
