package textsim

import "testing"

func TestOSADistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"empty", "", "", 0},
		{"same", "damerau", "damerau", 0},
		{"first empty", "", "damerau", 7},
		{"second empty", "damerau", "", 7},
		{"diff", "ca", "abc", 3},
		{"rotation", "ac", "cba", 3},
		{"diff short", "damerau", "aderua", 3},
		{"diff reversed", "aderua", "damerau", 3},
		{"multibyte", "öঙ香", "abc", 3},
		{"multibyte reversed", "abc", "öঙ香", 3},
		{"unequal length", "damerau", "aderuaxyz", 6},
		{"unequal length reversed", "aderuaxyz", "damerau", 6},
		{"comedians", "Stewart", "Colbert", 5},
		{"many transpositions", "abcdefghijkl", "bacedfgihjlk", 4},
		{"beginning transposition", "foobar", "ofobar", 1},
		{"end transposition", "specter", "spectre", 1},
		// A transposed substring may not be edited again, unlike the full
		// Damerau-Levenshtein distance.
		{"restricted edit", "a cat", "an abct", 4},
		{
			"longer",
			"The quick brown fox jumped over the angry dog.",
			"Lehem ipsum dolor sit amet, dicta latine an eam.",
			36,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OSADistance(tt.a, tt.b); got != tt.want {
				t.Errorf("OSADistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
