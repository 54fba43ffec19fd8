package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrWrongProvider      = errors.New("account uses Google Sign-In")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidGoogleToken = errors.New("google authentication failed")
)
