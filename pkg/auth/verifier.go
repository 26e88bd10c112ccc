package auth

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// TokenVerifier checks a bearer token with the identity service and returns
// the principal id it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (uid string, err error)
}

// OIDCVerifier verifies ID tokens against an OpenID Connect provider.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the provider configuration from the issuer URL
// and builds a verifier for the given audience.
func NewOIDCVerifier(ctx context.Context, issuerURL, clientID string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// VerifyToken validates signature, expiry, and audience, and returns the
// token subject as the principal id.
func (v *OIDCVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}
	if idToken.Subject == "" {
		return "", fmt.Errorf("ID token has no subject")
	}
	return idToken.Subject, nil
}
