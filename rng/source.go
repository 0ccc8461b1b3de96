// Package rng provides the injected uniform random sources used by drop resolution,
// placement and scatter sampling
package rng

import (
	"math/rand/v2"
)

// Source is the uniform random capability consumed by the drop packages
// Implementations need not be safe for concurrent use; each dispatcher owns one
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n); n <= 0 returns 0
	IntN(n int) int
}

// PCG is a seeded, reproducible Source backed by math/rand/v2
type PCG struct {
	r *rand.Rand
}

// NewPCG creates a PCG source from a 64-bit seed
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *PCG) Float64() float64 { return p.r.Float64() }

func (p *PCG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return p.r.IntN(n)
}

// Range returns a uniform float in [lo, hi)
// Swapped bounds are accepted; lo == hi returns lo
func Range(src Source, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns a uniform int in [lo, hi] inclusive
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
