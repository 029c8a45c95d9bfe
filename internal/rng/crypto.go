package rng

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Crypto draws numbers from a cryptographically secure source.
// The zero value reads from crypto/rand.
type Crypto struct {
	// Reader overrides the entropy source; tests only
	Reader io.Reader
}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0 or if the entropy source fails, matching math/rand.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	src := c.Reader
	if src == nil {
		src = rand.Reader
	}

	b, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
