package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes: access tokens are short lived, refresh tokens long lived.
const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken reports a token that failed verification: bad signature,
// malformed payload, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by both token kinds. The subject is the
// verified user email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HMAC-signed bearer tokens. There is no
// server-side token store; validity is determined purely by signature and
// expiry at verification time.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer returns an issuer signing with secret.
func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

// Mint creates a signed token bound to subject, expiring after ttl.
func (i *TokenIssuer) Mint(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims. Any failure —
// tampered signature, wrong algorithm, expiry — yields ErrInvalidToken.
func (i *TokenIssuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
