package monitor

import "math/rand/v2"

// Sampler produces values in [0, 100).
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() float64

// Sample calls f.
func (f SamplerFunc) Sample() float64 {
	return f()
}

// RandomSampler draws uniform samples from a PCG source.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler creates a sampler seeded with seed.
func NewRandomSampler(seed uint64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample returns a value in [0, 100).
func (r *RandomSampler) Sample() float64 {
	return r.rng.Float64() * 100
}
