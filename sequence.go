package textsim

import "unicode"

// commonPrefixLen returns the length of the common prefix of a and b,
// capped at limit.
func commonPrefixLen[E comparable](a, b []E, limit int) int {
	n := min(limit, len(a), len(b))
	p := 0
	for p < n && a[p] == b[p] {
		p++
	}
	return p
}

// stripSpace returns the code points of s with all whitespace removed.
func stripSpace(s string) []rune {
	rs := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			rs = append(rs, r)
		}
	}
	return rs
}
