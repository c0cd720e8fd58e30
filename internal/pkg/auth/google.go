// internal/pkg/auth/google.go
package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// TokenVerifier verifies an externally issued identity token and returns
// the verified email address.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (email string, err error)
}

// GoogleVerifier verifies Google ID tokens against a configured audience.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
	}
}

// Verify validates the token signature, expiry and audience, and extracts
// the email claim.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("token has no email claim")
	}

	return email, nil
}
