package seed

import "testing"

func TestHashStable(t *testing.T) {
	tests := []struct {
		seed     uint32
		expected string
	}{
		{123456789, "6F4DEF"},
		{1, "31"},
		{0, "30"},
	}

	for _, tt := range tests {
		if got := Hash(tt.seed); got != tt.expected {
			t.Errorf("Hash(%d) = %q, expected %q", tt.seed, got, tt.expected)
		}
	}
}

func TestHashLength(t *testing.T) {
	for _, s := range []uint32{7, 42, 999999999, 4294967295} {
		h := Hash(s)
		if len(h) == 0 || len(h) > 6 {
			t.Errorf("Hash(%d) = %q, expected 1..6 characters", s, h)
		}
	}
}

func TestDisplayFallback(t *testing.T) {
	if got, want := Display(0), Hash(Fallback); got != want {
		t.Errorf("Display(0) = %q, expected %q", got, want)
	}
	if got, want := Display(5), Hash(5); got != want {
		t.Errorf("Display(5) = %q, expected %q", got, want)
	}
}

func TestFromString(t *testing.T) {
	if got := FromString(""); got != 0 {
		t.Errorf("FromString(\"\") = %d, expected 0", got)
	}
	if got := FromString("hello"); got != 99162322 {
		t.Errorf("FromString(\"hello\") = %d, expected 99162322", got)
	}
	// "123456789" hashes to a negative int32; the seed is its magnitude.
	if got := FromString("123456789"); got != 1867378635 {
		t.Errorf("FromString(\"123456789\") = %d, expected 1867378635", got)
	}
}

func TestGenerateRange(t *testing.T) {
	for range 1000 {
		if s := Generate(); s >= Max {
			t.Fatalf("Generate() = %d, expected < %d", s, Max)
		}
	}
}

func TestParse(t *testing.T) {
	if got := Parse(" 100 "); got != 100 {
		t.Errorf("Parse(\" 100 \") = %d, expected 100", got)
	}
	if got, want := Parse("sunset"), FromString("sunset"); got != want {
		t.Errorf("Parse(\"sunset\") = %d, expected %d", got, want)
	}
}
