package cordate

import (
	"golang.org/x/exp/rand"
)

// Rand is the single random stream of a leaf. Every stochastic step draws
// from it, so the order of calls is part of the output.
type Rand struct {
	r *rand.Rand
}

// NewRand starts the stream for seed s.
func NewRand(s Seed) *Rand {
	return &Rand{r: rand.New(rand.NewSource(uint64(s.intSeed)))}
}

// Float returns a number in [0, max).
func (r *Rand) Float(max float64) float64 {
	return r.r.Float64() * max
}

// Range returns a number in [low, high).
func (r *Rand) Range(low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return r.r.Float64()*(high-low) + low
}
