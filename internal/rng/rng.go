package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Math wraps the automatically seeded math/rand source
type Math struct{}

// Intn returns a random number from 0 <= x < n
func (Math) Intn(n int) int {
	return rand.Intn(n) // nolint:gosec
}

// Seeded is a deterministic Generator. It should only be used by tests
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator that always yields the same sequence for the seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
