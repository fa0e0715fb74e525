// Package seed creates, hashes and derives tile seeds.
package seed

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Max is the exclusive upper bound of generated seeds (nine digits).
const Max = 1_000_000_000

// Fallback replaces a missing seed wherever a seed is only displayed.
const Fallback uint32 = 123456789

// Generate returns a fresh random seed in [0, Max).
// It reads the process entropy source and must never be used while rendering.
func Generate() uint32 {
	return uint32(rand.IntN(Max))
}

// polyHash folds code units with h = h*31 + c in 32-bit signed arithmetic.
func polyHash(units []uint16) int32 {
	var h int32
	for _, c := range units {
		h = h*31 + int32(c)
	}
	return h
}

func abs32(h int32) uint32 {
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// Hash returns a short uppercase hex tag for display, at most six characters.
// Distinct seeds may share a tag.
func Hash(seed uint32) string {
	digits := strconv.FormatUint(uint64(seed), 10)
	h := abs32(polyHash(utf16.Encode([]rune(digits))))
	hex := strconv.FormatUint(uint64(h), 16)
	if len(hex) > 6 {
		hex = hex[:6]
	}
	return strings.ToUpper(hex)
}

// Display returns the hash tag for seed, substituting Fallback for zero.
func Display(seed uint32) string {
	if seed == 0 {
		seed = Fallback
	}
	return Hash(seed)
}

// FromString derives a seed from arbitrary text. The empty string maps to 0.
func FromString(s string) uint32 {
	if s == "" {
		return 0
	}
	return abs32(polyHash(utf16.Encode([]rune(s))))
}

// Parse reads a decimal seed, falling back to FromString for other text.
func Parse(s string) uint32 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(v)
	}
	return FromString(s)
}
