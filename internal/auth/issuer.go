package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of an issued admin session token.
const TokenTTL = 24 * time.Hour

const adminSubject = "admin"

var (
	// ErrInvalidCredentials is returned by Authenticate when the pair does
	// not match. It never distinguishes which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers missing, malformed, expired and badly signed
	// tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Issuer exchanges the configured admin credential pair for signed session
// tokens and verifies presented tokens. Tokens are HS256, carry a fixed
// subject claim and are never persisted server-side.
type Issuer struct {
	secret   []byte
	username string
	password string
}

// NewIssuer builds an Issuer around the signing secret and the single
// recognised credential pair.
func NewIssuer(secret []byte, username, password string) *Issuer {
	return &Issuer{secret: secret, username: username, password: password}
}

// Authenticate checks the credential pair and returns a signed token on
// match. Both halves are compared in constant time before the result is
// combined, so response timing does not reveal which one failed.
func (i *Issuer) Authenticate(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(i.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(i.password))
	if userOK&passOK != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token, checks the signature, expiry and subject, and
// returns the identity it asserts.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return i.secret, nil
	}, jwt.WithLeeway(30*time.Second))

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject != adminSubject {
		return "", ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
