// Package rng abstracts random number generation so bot behavior can be
// scripted in tests.
package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Generator yields random integers
type Generator interface {
	// Intn returns a random number in [0, n)
	Intn(n int) int
}

// Crypto is a Generator backed by crypto/rand
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}

// Seed returns a crypto-secure positive shuffle seed
func Seed() int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64-1))
	if err != nil {
		panic(err)
	}

	return v.Int64() + 1
}
