package processors

import "testing"

func TestNull(t *testing.T) {
	if got := Null.Process("  BRA ZIL!  "); got != "  BRA ZIL!  " {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestLowerAlphaNum(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mixed case with punctuation", "  BRA-ZIL! 7 ", "brazil 7"},
		{"already clean", "brazil", "brazil"},
		{"only punctuation", "?!.,", ""},
		{"empty", "", ""},
		{"inner whitespace kept", "BRA ZIL", "bra zil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowerAlphaNum.Process(tt.in); got != tt.want {
				t.Errorf("LowerAlphaNum.Process(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNFC(t *testing.T) {
	// "e" + combining acute accent composes to a single code point.
	decomposed := "cafe\u0301"
	composed := "caf\u00e9"
	if got := NFC.Process(decomposed); got != composed {
		t.Errorf("NFC.Process(%q) = %q, want %q", decomposed, got, composed)
	}
}

func TestChain(t *testing.T) {
	p := Chain(NFC, LowerAlphaNum)
	if got := p.Process("  CAF\u00c9! "); got != "caf\u00e9" {
		t.Errorf("Chain.Process = %q, want %q", got, "caf\u00e9")
	}
}
