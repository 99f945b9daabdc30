// Package processors provides string transformations applied to a query and
// its candidates before metric evaluation.
package processors

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StringProcessor maps a string to a transformed string. Implementations
// must be pure: the same input always yields the same output.
type StringProcessor interface {
	Process(s string) string
}

// ProcessorFunc adapts an ordinary function to the StringProcessor
// interface.
type ProcessorFunc func(string) string

// Process calls f.
func (f ProcessorFunc) Process(s string) string { return f(s) }

// Null returns its input unchanged.
var Null StringProcessor = ProcessorFunc(func(s string) string { return s })

// LowerAlphaNum keeps only letters, digits and whitespace, trims surrounding
// whitespace and lowercases the rest.
var LowerAlphaNum StringProcessor = ProcessorFunc(lowerAlphaNum)

// NFC applies Unicode canonical composition, so strings that differ only in
// combining-character representation compare equal element-wise.
var NFC StringProcessor = ProcessorFunc(norm.NFC.String)

func lowerAlphaNum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// Chain applies the given processors in order, feeding each output into the
// next.
func Chain(ps ...StringProcessor) StringProcessor {
	return ProcessorFunc(func(s string) string {
		for _, p := range ps {
			s = p.Process(s)
		}
		return s
	})
}
