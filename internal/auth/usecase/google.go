package usecase

import (
	"context"

	authdomain "evently-backend/internal/auth/domain"

	"google.golang.org/api/idtoken"
)

// GoogleClaims is the subset of a verified Google ID token this core needs.
type GoogleClaims struct {
	Email         string
	Name          string
	Subject       string
	EmailVerified bool
}

// GoogleVerifier validates a Google-issued ID token. Signature and audience
// checks are delegated to Google's public key infrastructure.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleClaims, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a verifier bound to the app's OAuth client ID.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, authdomain.ErrInvalidGoogleToken
	}

	claims := &GoogleClaims{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}
	// Google encodes email_verified as a bool, older tokens as the string "true"
	switch verified := payload.Claims["email_verified"].(type) {
	case bool:
		claims.EmailVerified = verified
	case string:
		claims.EmailVerified = verified == "true"
	}
	return claims, nil
}
