package delivery

import (
	"errors"
	"net/http"

	authdomain "evently-backend/internal/auth/domain"
	authdto "evently-backend/internal/auth/dto"
	"evently-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login checks password credentials
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No records found!"})
		case errors.Is(err, authdomain.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Wrong password"})
		case errors.Is(err, authdomain.ErrWrongProvider):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please use Google Sign-In for this account"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GoogleSignIn validates a Google ID token and signs the user in
// POST /auth/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req authdto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	resp, err := h.authUsecase.GoogleSignIn(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidGoogleToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Google Authentication failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authUsecase.Me(userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
