package textsim

// Hamming returns the number of positions at which a and b differ. The
// inputs must contain the same number of code points; otherwise a
// *LengthMismatchError reporting both lengths is returned.
func Hamming(a, b string) (int, error) {
	return GenericHamming([]rune(a), []rune(b))
}

// GenericHamming is Hamming over slices of any comparable element type.
func GenericHamming[E comparable](a, b []E) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}
	count := 0
	for i := range a {
		if a[i] != b[i] {
			count++
		}
	}
	return count, nil
}
