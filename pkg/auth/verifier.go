package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type TokenClaims struct {
	// Subject is the user's stable Alien ID ('sub' claim).
	Subject string
}

// TokenVerifier checks an SSO access token and returns its claims.
// Implemented against the Alien SSO JWKS in production and by fakes in tests.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*TokenClaims, error)
}

type jwksVerifier struct {
	jwks keyfunc.Keyfunc
}

// NewJWKSVerifier fetches the SSO provider's JWKS and keeps it refreshed in
// the background for the lifetime of ctx.
func NewJWKSVerifier(ctx context.Context, jwksURL string) (TokenVerifier, error) {
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("load jwks from %s: %w", jwksURL, err)
	}
	return &jwksVerifier{jwks: jwks}, nil
}

func (v *jwksVerifier) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"EdDSA", "RS256", "ES256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{Subject: subject}, nil
}
