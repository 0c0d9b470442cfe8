// Package token issues and verifies the signed tokens that authenticate
// API requests.
//
// Tokens are self-contained HS256 JWTs carrying the user ID in a "userid"
// claim. There is no revocation list; validity is purely cryptographic and,
// when an expiry is configured, temporal.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that fails
// validation: bad signature, wrong algorithm, malformed input, missing
// claim, or expiry.
var ErrInvalidToken = errors.New("invalid token")

const userIDClaim = "userid"

// Issuer creates and verifies signed tokens with an injected secret.
// The zero value is not usable; construct with New.
type Issuer struct {
	secret []byte
	expiry time.Duration // 0 disables the exp claim
}

// New returns an Issuer signing with secret. If expiry is positive, issued
// tokens carry an exp claim that far in the future; zero means tokens never
// expire.
func New(secret string, expiry time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiry: expiry}
}

// Issue creates a signed token identifying userID.
func (i *Issuer) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		userIDClaim: userID,
		"iat":       jwt.NewNumericDate(time.Now()),
	}
	if i.expiry > 0 {
		claims["exp"] = jwt.NewNumericDate(time.Now().Add(i.expiry))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify validates the signature (and expiry, when present) of raw and
// returns the user ID it carries. Any failure maps to ErrInvalidToken.
func (i *Issuer) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims[userIDClaim].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
