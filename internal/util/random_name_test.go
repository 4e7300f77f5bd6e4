package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec

	name := GetRandomName()
	parts := strings.SplitN(name, " ", 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, animals, parts[1])

	assert.NotEqual(t, name, GetRandomName())
}
