package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated caller as described by the identity
// provider's token. Subject is the stable external id ("sub"); the rest
// are optional profile claims.
type Principal struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type VerifierConfig struct {
	Issuer   string
	Audience string
	JWKSURL  string
}

// Verifier validates provider-issued bearer tokens. Signing keys are
// resolved from the provider's JWKS endpoint and refreshed in the
// background by keyfunc.
type Verifier struct {
	keys     keyfunc.Keyfunc
	issuer   string
	audience string
}

func NewVerifier(ctx context.Context, cfg VerifierConfig) (*Verifier, error) {
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, fmt.Errorf("issuer and audience are required")
	}

	keys, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
	if err != nil {
		return nil, fmt.Errorf("load JWKS from %s: %w", cfg.JWKSURL, err)
	}

	return &Verifier{
		keys:     keys,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

// Verify parses and validates tokenString and returns the Principal it
// describes. Raw claim names are used throughout; there is no inbound
// claim-type remapping.
func (v *Verifier) Verify(tokenString string) (Principal, error) {
	token, err := jwt.Parse(
		tokenString,
		v.keys.Keyfunc,
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512", "ES256", "ES384", "ES512"}),
	)

	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Principal{}, fmt.Errorf("invalid token claims")
	}

	return Principal{
		Subject: stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Picture: stringClaim(claims, "picture"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	s, _ := claims[name].(string)
	return s
}
