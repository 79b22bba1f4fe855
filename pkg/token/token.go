// Package token issues and verifies the gateway's access credentials: HMAC
// signed JWTs asserting a phone identity and an expiry instant. Tokens are
// stateless; nothing is persisted server-side.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sqlgate/pkg/apperr"
)

// Claims is the access token payload.
type Claims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies access tokens with a shared server secret.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewIssuer creates an Issuer. algorithm must be one of the HMAC family
// (HS256/HS384/HS512), validated by config.Settings.
func NewIssuer(secret, algorithm string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		method: jwt.GetSigningMethod(algorithm),
		ttl:    ttl,
	}
}

// Issue mints a token for phone. It returns the signed token and its
// lifetime in seconds.
func (i *Issuer) Issue(phone string) (string, int64, error) {
	now := time.Now()
	claims := Claims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, int64(i.ttl / time.Second), nil
}

// Verify decodes tokenString, checks the signature and expiry, and returns
// the embedded phone identity.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", apperr.Wrap(apperr.KindInvalidCredential, "Could not validate credentials", err)
	}
	if claims.Phone == "" {
		return "", apperr.New(apperr.KindInvalidCredential, "Could not validate credentials")
	}
	return claims.Phone, nil
}

// VerifyHeader verifies the credential presented in an Authorization header.
// An empty header is a missing credential, distinguished from an invalid one.
func (i *Issuer) VerifyHeader(header string) (string, error) {
	if header == "" {
		return "", apperr.New(apperr.KindCredentialRequired, "access token is required")
	}
	return i.Verify(FromAuthorizationHeader(header))
}

// FromAuthorizationHeader extracts the token from a "<scheme> <token>" header
// value, taking the last whitespace-delimited segment.
func FromAuthorizationHeader(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
