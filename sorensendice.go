package textsim

// SorensenDice returns the Sørensen-Dice coefficient of a and b over
// character bigrams, between 0.0 and 1.0 where 1.0 means the strings are
// identical. Whitespace is ignored. Bigrams are counted as a multiset:
// repeated bigrams contribute once per shared occurrence.
func SorensenDice(a, b string) float64 {
	ra := stripSpace(a)
	rb := stripSpace(b)

	if string(ra) == string(rb) {
		return 1.0
	}
	if len(ra) < 2 || len(rb) < 2 {
		return 0.0
	}

	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i+1 < len(ra); i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}

	intersection := 0
	for i := 0; i+1 < len(rb); i++ {
		bg := [2]rune{rb[i], rb[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2.0 * float64(intersection) / float64(len(ra)+len(rb)-2)
}
