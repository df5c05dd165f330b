// Package random provides the process-wide source used to draw game outcomes.
package random

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Source is a ChaCha8 generator seeded from the OS entropy pool. Safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource seeds a new generator from crypto/rand
func NewSource() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("random: failed to seed: " + err.Error())
	}
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

// IntN returns a uniform int in [0, n)
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Float64 returns a uniform float in [0, 1)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
