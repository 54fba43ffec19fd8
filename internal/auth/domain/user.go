package domain

import "time"

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never returned in JSON
	Name      string    `json:"name" gorm:"not null"`
	Provider  string    `json:"provider"` // "email" or "google"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
