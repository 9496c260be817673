package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func newTestIssuer() *Issuer {
	return NewIssuer(testSecret, "Admin", "Admin@123")
}

func TestAuthenticateRoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.Authenticate("Admin", "Admin@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestAuthenticateRejectsWrongPair(t *testing.T) {
	issuer := newTestIssuer()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "Admin", "wrong"},
		{"wrong username", "root", "Admin@123"},
		{"both wrong", "root", "toor"},
		{"empty pair", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Authenticate(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	issuer := newTestIssuer()

	sign := func(secret []byte, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		signed, err := jwt.NewWithClaims(method, claims).SignedString(secret)
		require.NoError(t, err)
		return signed
	}

	now := time.Now()
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.token"},
		{"expired beyond leeway", sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		})},
		{"wrong signature", sign([]byte("other-secret"), jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})},
		{"wrong signing method", sign(testSecret, jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})},
		{"wrong subject", sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "visitor",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})},
		{"no expiry", sign(testSecret, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: "admin",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestIssuedTokenCarriesDayLongExpiry(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.Authenticate("Admin", "Admin@123")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}
