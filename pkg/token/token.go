package token

import (
	"crypto/rand"
)

// alphabet omits characters that read ambiguously when an invite code is
// shared out loud (0/O, 1/I/L)
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate returns a crypto-secure invite code of length n
func Generate(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i, v := range b {
		b[i] = alphabet[int(v)%len(alphabet)]
	}

	return string(b), nil
}
