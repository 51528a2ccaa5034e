package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws inclusive integers for the pool generator
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a source seeded from the runtime's entropy
func NewSource() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a reproducible source; equal seeds give equal sequences
func NewSeededSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSourceFromConfig picks a seeded source when seed is non-zero
func NewSourceFromConfig(seed uint64) *Source {
	if seed == 0 {
		return NewSource()
	}
	return NewSeededSource(seed)
}

// IntInRange returns a uniform integer in [min, max]; max below min collapses to min
func (s *Source) IntInRange(min, max int) int {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.IntN(max-min+1)
}
