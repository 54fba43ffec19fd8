package repository

import (
	"time"

	"evently-backend/internal/event/domain"
)

// EventFilter is the single filter shape behind both retrieval modes: the
// organizer-scoped listing sets OrganizerID and DayStart, the public search
// leaves OrganizerID empty and uses DateExact and Keyword. All set fields
// are combined with logical AND.
type EventFilter struct {
	OrganizerID string     // scope to one organizer when non-empty
	Location    string     // case-insensitive substring
	DayStart    *time.Time // 24h window [DayStart, DayStart+24h)
	DateExact   *time.Time // exact date value
	Category    string     // exact match
	TextQuery   string     // full-text search over title + description
	Keyword     string     // case-insensitive substring on title
}

// EventSort selects the result ordering
type EventSort int

const (
	SortNone EventSort = iota
	SortDateAsc
	SortPopularityDesc
)

// EventRepository defines the interface for event data access. It performs
// no ownership checks; those belong to the usecase layer.
type EventRepository interface {
	// Create persists a new event, assigning its ID
	Create(event *domain.Event) error

	// FindByID finds an event by its ID, nil if absent
	FindByID(id string) (*domain.Event, error)

	// Find returns events matching the filter plus the total match count.
	// A negative limit disables pagination.
	Find(filter EventFilter, sort EventSort, skip, limit int) ([]*domain.Event, int64, error)

	// Update updates an existing event
	Update(event *domain.Event) error

	// Delete deletes an event by ID
	Delete(id string) error
}
