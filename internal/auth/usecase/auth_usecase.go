package usecase

import (
	"context"
	"strings"
	"time"

	authdomain "evently-backend/internal/auth/domain"
	authdto "evently-backend/internal/auth/dto"
	"evently-backend/internal/auth/repository"
	"evently-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	verifier GoogleVerifier
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, verifier GoogleVerifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		verifier: verifier,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
		Name:     strings.TrimSpace(req.Name),
		Provider: authdomain.ProviderEmail,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	// Accounts created through Google sign-in carry only a placeholder hash
	// of the provider subject; password login is disabled for them.
	if user.Provider != authdomain.ProviderEmail {
		return nil, authdomain.ErrWrongProvider
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrWrongPassword
	}

	return u.issueToken(user)
}

func (u *authUsecase) GoogleSignIn(ctx context.Context, idToken string) (*authdto.TokenResponse, error) {
	claims, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, authdomain.ErrInvalidGoogleToken
	}

	email := normalizeEmail(claims.Email)
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// First sign-in with this email: create an account. The subject hash
		// satisfies the non-null password column, nothing more.
		placeholder, err := repository.HashPassword(claims.Subject)
		if err != nil {
			return nil, err
		}
		user = &authdomain.User{
			Email:    email,
			Password: placeholder,
			Name:     claims.Name,
			Provider: authdomain.ProviderGoogle,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	return u.issueToken(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, authdomain.ErrInvalidToken
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", authdomain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", authdomain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", authdomain.ErrInvalidToken
	}
	return userID, nil
}

func (u *authUsecase) Me(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) issueToken(user *authdomain.User) (*authdto.TokenResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{Token: signed}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
