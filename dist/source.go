package dist

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/bits"
	randv2 "math/rand/v2"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 11634580027462260723
)

// chachaSource adapts the ChaCha8 generator to the rand.Source interface
// used by gonum's distuv types
type chachaSource struct {
	c *randv2.ChaCha8
}

var _ rand.Source = (*chachaSource)(nil)

// NewSource returns the generator selected by seed. A seeded selector always
// produces the same stream.
func NewSource(seed Seed) rand.Source {
	var key [32]byte
	if v, ok := seed.Value(); ok {
		key = expandSeed(v)
	} else if _, err := crand.Read(key[:]); err != nil {
		panic(errors.New("could not read random bytes for seeding"))
	}
	return &chachaSource{c: randv2.NewChaCha8(key)}
}

func (s *chachaSource) Uint64() uint64 {
	return s.c.Uint64()
}

// Seed rekeys the generator from seed
func (s *chachaSource) Seed(seed uint64) {
	s.c.Seed(expandSeed(seed))
}

// expandSeed fills a ChaCha8 key from a 64 bit seed with the PCG32 output
// function, four bytes per step
func expandSeed(state uint64) [32]byte {
	var key [32]byte
	for i := 0; i < len(key); i += 4 {
		state = state*pcgMultiplier + pcgIncrement
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		binary.LittleEndian.PutUint32(key[i:], bits.RotateLeft32(xorshifted, -rot))
	}
	return key
}

// uniform draws from U(0,1) using src
func uniform(src rand.Source) float64 {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
}

// inverseTransform draws one variate of d from src
func inverseTransform(d Distribution, src rand.Source) float64 {
	return d.Quantile(uniform(src))
}

// Sample draws n variates of d from a single stream. The first value equals
// d.Random(seed).
func Sample(d Distribution, seed Seed, n int) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, domainErr(nameOf(d), "n", float64(n), "n >= 0")
	}
	src := NewSource(seed)
	values := make([]float64, n)
	for i := range values {
		values[i] = inverseTransform(d, src)
	}
	return values, nil
}
