package usecase

import (
	"context"

	authdomain "evently-backend/internal/auth/domain"
	authdto "evently-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	// Register creates an account and returns a session token
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login checks password credentials and returns a session token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// GoogleSignIn validates a Google ID token, finding or creating the
	// matching account, and returns a session token
	GoogleSignIn(ctx context.Context, idToken string) (*authdto.TokenResponse, error)

	// ValidateToken verifies a session token and returns the caller's user ID
	ValidateToken(tokenString string) (string, error)

	// Me returns the authenticated user's profile
	Me(userID string) (*authdomain.User, error)
}
