package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestKeys(t *testing.T) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privateKey = key
	publicKey = &key.PublicKey
}

func signTestClaims(t *testing.T, claims jwtgo.RegisteredClaims) string {
	t.Helper()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, claims)
	signedToken, err := token.SignedString(privateKey)
	require.NoError(t, err)
	return signedToken
}

func TestSignAndValidateUserID(t *testing.T) {
	loadTestKeys(t)

	sign, err := Sign(18)
	assert.NoError(t, err)

	id, err := ValidUserID(sign)
	assert.NoError(t, err)
	assert.Equal(t, int64(18), id)
}

func TestValidUserID_InvalidAudience(t *testing.T) {
	loadTestKeys(t)

	signedToken := signTestClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{"different-audience"},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  "15",
	})

	id, err := ValidUserID(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenInvalidAudience)
	assert.Equal(t, int64(0), id)
}

func TestValidUserID_InvalidIssuer(t *testing.T) {
	loadTestKeys(t)

	signedToken := signTestClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   "invalid-issuer",
		Subject:  "15",
	})

	id, err := ValidUserID(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenInvalidIssuer)
	assert.Equal(t, int64(0), id)
}

func TestValidUserID_Expired(t *testing.T) {
	loadTestKeys(t)

	signedToken := signTestClaims(t, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(time.Now()),
		ExpiresAt: jwtgo.NewNumericDate(time.Now().Add(time.Hour * -1)),
		Issuer:    Issuer,
		Subject:   "15",
	})

	id, err := ValidUserID(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenExpired)
	assert.Equal(t, int64(0), id)
}

func TestValidUserID_WrongKey(t *testing.T) {
	loadTestKeys(t)
	sign, err := Sign(18)
	require.NoError(t, err)

	// rotate to a different key pair
	loadTestKeys(t)

	id, err := ValidUserID(sign)
	assert.Error(t, err)
	assert.Equal(t, int64(0), id)
}
