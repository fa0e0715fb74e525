// Package rng provides the seeded pseudo-random generator that drives every
// pattern. The stream for a given seed is identical on all platforms.
package rng

// increment is the odd Weyl step added to the state before each draw.
const increment uint32 = 0x6D2B79F5

// Mulberry32 is a 32-bit mulberry32 generator.
// A value is owned by exactly one draw call and must not be shared.
type Mulberry32 struct {
	state uint32
}

// New creates a generator seeded with seed. Zero is a valid seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next advances the state and returns the next mixed 32-bit word.
func (m *Mulberry32) Next() uint32 {
	m.state += increment
	t := m.state
	r := (t ^ (t >> 15)) * (t | 1)
	r ^= r + (r^(r>>7))*(r|61)
	return r ^ (r >> 14)
}

// Float returns the next value in [0, 1).
func (m *Mulberry32) Float() float64 {
	return float64(m.Next()) / 4294967296.0
}

// Intn returns a value in [0, n) derived from Float. n <= 0 yields 0.
func (m *Mulberry32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(m.Float() * float64(n))
}
