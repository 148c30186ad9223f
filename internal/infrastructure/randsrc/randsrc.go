// Package randsrc provides the process-wide randomness source. The core
// takes randomness through a port so tests can substitute a seeded or
// scripted source; this implementation is safe for concurrent use by the
// scheduler's timer goroutines.
package randsrc

import (
	"math/rand/v2"
	"sync"
	"time"
)

type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source seeded with seed; seed 0 means time-based.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
