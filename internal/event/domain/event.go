package domain

import "time"

// Event is a record owned by exactly one organizer. OrganizerID is set once
// at creation from the authenticated caller and never changes.
type Event struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	OrganizerID      string    `json:"organizerId" gorm:"index;not null"`
	Title            string    `json:"title" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null"`
	Date             time.Time `json:"date" gorm:"not null"`
	Time             string    `json:"time" gorm:"not null"` // wall-clock time, kept apart from Date
	Location         string    `json:"location" gorm:"not null"`
	Category         string    `json:"category,omitempty"`
	TicketPrice      float64   `json:"ticketPrice" gorm:"default:0"`
	TicketsAvailable int       `json:"ticketsAvailable" gorm:"default:0"`
	IsPrivate        bool      `json:"isPrivate" gorm:"default:false"`
	Popularity       int       `json:"popularity" gorm:"default:0"`
	CreatedAt        time.Time `json:"createdAt"`
}
