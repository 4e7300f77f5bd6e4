package jwt

import (
	"crypto/rsa"
	"os"
	"strconv"
	"time"

	"bigtwo-server/internal/config"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "io.bigtwo.server"

// Audience is the intended JWT audience
const Audience = "bigtwo.io"

// sessionTTL is how long a guest session token stays valid
const sessionTTL = time.Hour * 24 * 30

var publicKey *rsa.PublicKey
var privateKey *rsa.PrivateKey

// LoadKeys will load the public and private keys
// this method should only be called once.
func LoadKeys() {
	cfg := config.Instance().JWT
	privateKey = mustLoadPrivateKey(cfg.PrivateKey)
	publicKey = mustLoadPublicKey(cfg.PublicKey)
}

// Sign returns a signed session token for the user ID
func Sign(userID int64) (string, error) {
	if privateKey == nil {
		panic("LoadKeys() not called")
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ExpiresAt: jwtgo.NewNumericDate(now.Add(sessionTTL)),
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(now),
		Issuer:    Issuer,
		Subject:   strconv.FormatInt(userID, 10),
	})

	return token.SignedString(privateKey)
}

// ValidUserID returns the user ID from a signed session token.
// The signature, issuer, audience, and expiry must all check out.
func ValidUserID(signedString string) (int64, error) {
	if publicKey == nil {
		panic("LoadKeys() not called")
	}

	var claims jwtgo.RegisteredClaims
	_, err := jwtgo.ParseWithClaims(signedString, &claims, publicKeyFunc,
		jwtgo.WithValidMethods([]string{"RS256"}),
		jwtgo.WithIssuer(Issuer),
		jwtgo.WithAudience(Audience),
	)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(claims.Subject, 10, 64)
}

func publicKeyFunc(*jwtgo.Token) (interface{}, error) {
	return publicKey, nil
}

func mustLoadPublicKey(path string) *rsa.PublicKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Fatal("could not read public key")
	}

	key, err := jwtgo.ParseRSAPublicKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Fatal("could not parse public key")
	}

	return key
}

func mustLoadPrivateKey(path string) *rsa.PrivateKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Fatal("could not read private key")
	}

	key, err := jwtgo.ParseRSAPrivateKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Fatal("could not parse private key")
	}

	return key
}
