package textsim

import "testing"

func TestSorensenDice(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same one character", "a", "a", 1.0},
		{"diff one character", "a", "b", 0.0},
		{"both empty", "", "", 1.0},
		{"second empty", "a", "", 0.0},
		{"first empty", "", "a", 0.0},
		{"whitespace ignored", "apple event", "apple    event", 1.0},
		{"substring", "iphone", "iphone x", 0.90909},
		{"no shared bigrams", "french", "quebec", 0.0},
		{"same", "france", "france", 1.0},
		{"case sensitive", "fRaNce", "france", 0.2},
		{"one substitution", "healed", "sealed", 0.8},
		{"reordered words", "web applications", "applications of the web", 0.78788},
		{"typo", "this will have a typo somewhere", "this will huve a typo somewhere", 0.92},
		{
			"ad variant",
			"Olive-green table for sale, in extremely good condition.",
			"For sale: table in very good  condition, olive green in colour.",
			0.60606,
		},
		{
			"ad unrelated car",
			"Olive-green table for sale, in extremely good condition.",
			"For sale: green Subaru Impreza, 210,000 miles",
			0.25581,
		},
		{
			"ad unrelated bike",
			"Olive-green table for sale, in extremely good condition.",
			"Wanted: mountain bike with at least 21 gears.",
			0.14118,
		},
		{"extra word", "this has one extra word", "this has one word", 0.77419},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDelta(t, tt.want, SorensenDice(tt.a, tt.b))
			assertDelta(t, tt.want, SorensenDice(tt.b, tt.a))
		})
	}
}
