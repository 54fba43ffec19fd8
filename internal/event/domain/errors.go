package domain

import "errors"

var (
	ErrNotFound   = errors.New("event not found")
	ErrNotOwner   = errors.New("user not authorized")
	ErrValidation = errors.New("validation failed")
)
