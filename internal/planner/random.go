package planner

import (
	"math/rand/v2"
	"sync"
)

// RandSource draws the index of a candidate activity. IntN returns a value in [0, n).
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRand uses the process-wide generator of math/rand/v2, which is safe for concurrent use.
func DefaultRand() RandSource {
	return globalRand{}
}

type seededRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRand returns a reproducible source. Two sources with the same seed yield the same draws.
func NewSeededRand(seed uint64) RandSource {
	return &seededRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
