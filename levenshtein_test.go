package textsim

import (
	"math"
	"testing"
)

func assertDelta(t *testing.T, want, got float64) {
	t.Helper()
	assertDeltaEps(t, want, got, 1e-5)
}

func assertDeltaEps(t *testing.T, want, got, eps float64) {
	t.Helper()
	if math.Abs(want-got) > eps {
		t.Errorf("expected %v, got %v (tolerance %v)", want, got, eps)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"empty", "", "", 0},
		{"same", "levenshtein", "levenshtein", 0},
		{"diff short", "kitten", "sitting", 3},
		{"diff with space", "hello, world", "bye, world", 5},
		{"multibyte", "öঙ香", "abc", 3},
		{"multibyte reversed", "abc", "öঙ香", 3},
		{"first empty", "", "sitting", 7},
		{"second empty", "kitten", "", 6},
		{
			"longer",
			"The quick brown fox jumped over the angry dog.",
			"Lorem ipsum dolor sit amet, dicta latine an eam.",
			37,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Levenshtein(tt.b, tt.a); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestGenericLevenshtein(t *testing.T) {
	if got := GenericLevenshtein([]int{1, 2, 3}, []int{0, 2, 5}); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := GenericLevenshtein([]int{1, 2, 3}, []int{1, 2, 3, 4, 5, 6}); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestNormalizedLevenshtein(t *testing.T) {
	t.Run("diff short", func(t *testing.T) {
		assertDelta(t, 0.57142, NormalizedLevenshtein("kitten", "sitting"))
	})
	t.Run("both empty", func(t *testing.T) {
		assertDelta(t, 1.0, NormalizedLevenshtein("", ""))
	})
	t.Run("first empty", func(t *testing.T) {
		assertDelta(t, 0.0, NormalizedLevenshtein("", "second"))
	})
	t.Run("second empty", func(t *testing.T) {
		assertDelta(t, 0.0, NormalizedLevenshtein("first", ""))
	})
	t.Run("identical", func(t *testing.T) {
		assertDelta(t, 1.0, NormalizedLevenshtein("identical", "identical"))
	})
}
