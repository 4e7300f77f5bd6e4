package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	for i := 0; i < 5; i++ {
		a.True(found[i])
	}
	a.False(found[5])
}

func TestSeed(t *testing.T) {
	a := assert.New(t)

	seed := Seed()
	a.Greater(seed, int64(0))

	// it's possible this could fail, but not likely
	a.NotEqual(seed, Seed())
}
