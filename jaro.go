package textsim

const (
	winklerBoostThreshold = 0.7
	winklerPrefixLimit    = 4
	winklerScalingFactor  = 0.1
)

// Jaro returns the Jaro similarity between a and b, between 0.0 and 1.0
// where 1.0 means the strings are identical. Two empty strings score 1.0;
// one empty string scores 0.0.
func Jaro(a, b string) float64 {
	return GenericJaro([]rune(a), []rune(b))
}

// GenericJaro is Jaro over slices of any comparable element type.
func GenericJaro[E comparable](a, b []E) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}

	window := max(max(la, lb)/2-1, 0)
	aFlags := make([]bool, la)
	bFlags := make([]bool, lb)

	matches := 0
	for i := range a {
		lo := max(i-window, 0)
		hi := min(i+window+1, lb)
		for j := lo; j < hi; j++ {
			if !bFlags[j] && a[i] == b[j] {
				aFlags[i] = true
				bFlags[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Walk the matched elements of both sequences in order; every aligned
	// pair that disagrees is half a transposition.
	halfTransposed := 0
	j := 0
	for i := range a {
		if !aFlags[i] {
			continue
		}
		for !bFlags[j] {
			j++
		}
		if a[i] != b[j] {
			halfTransposed++
		}
		j++
	}
	transpositions := halfTransposed / 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3.0
}

// JaroWinkler returns the Jaro-Winkler similarity between a and b: the Jaro
// similarity with a boost for a common prefix of up to four characters. The
// boost only applies when the Jaro similarity exceeds 0.7.
func JaroWinkler(a, b string) float64 {
	return GenericJaroWinkler([]rune(a), []rune(b))
}

// GenericJaroWinkler is JaroWinkler over slices of any comparable element
// type.
func GenericJaroWinkler[E comparable](a, b []E) float64 {
	sim := GenericJaro(a, b)
	if sim <= winklerBoostThreshold {
		return sim
	}
	prefix := commonPrefixLen(a, b, winklerPrefixLimit)
	return sim + winklerScalingFactor*float64(prefix)*(1.0-sim)
}
