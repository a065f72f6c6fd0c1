package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func useTestKeys(t *testing.T) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	privateKey = key
	publicKey = &key.PublicKey

	t.Cleanup(func() {
		privateKey = nil
		publicKey = nil
	})
}

func TestSignAndValidate(t *testing.T) {
	useTestKeys(t)

	signed, err := Sign(1234)
	assert.NoError(t, err)
	assert.NotEqual(t, "", signed)

	userID, err := ValidUserID(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(1234), userID)
}

func TestValidUserID_badToken(t *testing.T) {
	useTestKeys(t)

	_, err := ValidUserID("not-a-jwt")
	assert.Error(t, err)
}

func TestValidUserID_wrongIssuer(t *testing.T) {
	useTestKeys(t)

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   "someone-else",
		Subject:  "1234",
	})

	signed, err := token.SignedString(privateKey)
	assert.NoError(t, err)

	_, err = ValidUserID(signed)
	assert.Error(t, err)
}

func TestValidUserID_wrongAudience(t *testing.T) {
	useTestKeys(t)

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{"someone-else"},
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  "1234",
	})

	signed, err := token.SignedString(privateKey)
	assert.NoError(t, err)

	_, err = ValidUserID(signed)
	assert.Error(t, err)
}

func TestValidUserID_wrongSigningMethod(t *testing.T) {
	useTestKeys(t)

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		Issuer:   Issuer,
		Subject:  "1234",
	})

	signed, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = ValidUserID(signed)
	assert.Error(t, err)
}
