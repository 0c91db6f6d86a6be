// Package auth implements the token side of authentication: a stateless
// codec for signed bearer tokens and an in-memory revocation list
// consulted before any cryptographic check.
package auth

import (
	"time"

	"github.com/devdan/contactbook/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the value written into the iss claim of every issued token.
const Issuer = "contactbook"

// Codec issues and verifies HS256-signed bearer tokens. The signing key
// is fixed at construction time; verification is a pure function of it.
type Codec struct {
	secretKey  []byte
	defaultTTL time.Duration
}

func NewCodec(secretKey []byte, defaultTTL time.Duration) *Codec {
	return &Codec{secretKey: secretKey, defaultTTL: defaultTTL}
}

// Issue creates a token for subject with the codec's default validity.
func (c *Codec) Issue(subject string) (string, error) {
	return c.IssueFor(subject, c.defaultTTL)
}

// IssueFor creates a token for subject that expires after ttl.
func (c *Codec) IssueFor(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		Issuer:    Issuer,
	})

	return token.SignedString(c.secretKey)
}

// Subject returns the subject embedded in tokenString if the signature is
// valid and the token has not expired. Any malformed, tampered or expired
// token yields common.ErrInvalidToken.
func (c *Codec) Subject(tokenString string) (string, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExpiresAt returns the embedded expiry under the same validity checks
// as Subject.
func (c *Codec) ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

func (c *Codec) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
