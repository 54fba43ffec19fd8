package repository

import authdomain "evently-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, assigning its ID
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, nil if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by ID, nil if absent
	FindByID(id string) (*authdomain.User, error)
}
