package dist

import "strconv"

// Seed selects how the generator behind Random is seeded. The zero value
// is unseeded: the generator is keyed from system entropy.
type Seed struct {
	value  uint64
	seeded bool
}

// Unseeded returns the entropy seed selector
func Unseeded() Seed {
	return Seed{}
}

// WithSeed returns a selector that keys the generator from v
func WithSeed(v uint64) Seed {
	return Seed{value: v, seeded: true}
}

// Value returns the seed and true, or false when unseeded
func (s Seed) Value() (uint64, bool) {
	return s.value, s.seeded
}

func (s Seed) String() string {
	if !s.seeded {
		return "unseeded"
	}
	return strconv.FormatUint(s.value, 10)
}
