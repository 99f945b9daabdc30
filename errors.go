package textsim

import "fmt"

// LengthMismatchError is returned by Hamming and GenericHamming when the two
// inputs do not contain the same number of elements.
type LengthMismatchError struct {
	LenA int
	LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("textsim: sequences have different lengths (%d and %d)", e.LenA, e.LenB)
}
