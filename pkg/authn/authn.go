// Package authn implements OTP login: the submitted one-time password is
// digested and compared against the stored hash, and a signed access token is
// minted on match.
package authn

import (
	"context"
	"crypto/md5"
	"encoding/hex"

	"sqlgate/pkg/apperr"
	"sqlgate/pkg/server/store"
)

// TokenIssuer mints access tokens for authenticated identities.
type TokenIssuer interface {
	Issue(phone string) (signed string, expiresIn int64, err error)
}

// Service handles the login flow.
type Service struct {
	users  store.UserStore
	issuer TokenIssuer
}

// NewService creates a new login Service.
func NewService(users store.UserStore, issuer TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// LoginResponse is the successful login body.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// HashOTP returns the MD5 hex digest of an OTP, matching the stored format.
// OTPs are short-lived single-use codes; this is not a password storage
// scheme.
func HashOTP(otp string) string {
	digest := md5.Sum([]byte(otp))
	return hex.EncodeToString(digest[:])
}

// Login verifies phone+otp and mints an access token.
func (s *Service) Login(ctx context.Context, phone, otp string) (*LoginResponse, error) {
	user, err := s.users.ByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if HashOTP(otp) != user.OTP {
		return nil, apperr.New(apperr.KindIncorrectOtp, "Incorrect OTP")
	}

	signed, expiresIn, err := s.issuer.Issue(phone)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindExecutionFailed, "Something went wrong", err)
	}

	return &LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
