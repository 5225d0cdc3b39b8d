// Package rng provides the game's seeded random sources. One source is
// created per run and handed to the systems that draw from it; entities that
// need their own stream fork it.
package rng

import "math/rand/v2"

// DefaultSeed is used when no -seed flag is given.
const DefaultSeed uint64 = 12345

// Source is a deterministic PCG stream. It is not safe for concurrent use.
type Source struct {
	r *rand.Rand
}

func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed))}
}

// I32Range returns a uniform integer in the closed range [lo, hi].
func (s *Source) I32Range(lo, hi int32) int32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := int64(hi) - int64(lo) + 1
	return int32(int64(lo) + s.r.Int64N(span))
}

// F64Range returns a uniform float in [lo, hi).
func (s *Source) F64Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Fork derives an independent source from s. Forking advances s, so the
// sequence of forks is itself reproducible.
func (s *Source) Fork() *Source {
	return &Source{r: rand.New(rand.NewPCG(s.r.Uint64(), s.r.Uint64()))}
}
