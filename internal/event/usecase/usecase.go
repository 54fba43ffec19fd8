package usecase

import "evently-backend/internal/event/domain"

// EventCreateRequest is the request body for creating an event
type EventCreateRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	Time             string  `json:"time" binding:"required"`
	Location         string  `json:"location" binding:"required"`
	Category         string  `json:"category"`
	TicketPrice      float64 `json:"ticketPrice" binding:"gte=0"`
	TicketsAvailable int     `json:"ticketsAvailable" binding:"gte=0"`
	IsPrivate        bool    `json:"isPrivate"`
}

// EventUpdateRequest carries a partial update. Nil fields keep the stored
// value; a non-nil pointer applies, so an explicit 0 price is honored.
type EventUpdateRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Date             *string  `json:"date"`
	Time             *string  `json:"time"`
	Location         *string  `json:"location"`
	Category         *string  `json:"category"`
	TicketPrice      *float64 `json:"ticketPrice"`
	TicketsAvailable *int     `json:"ticketsAvailable"`
	IsPrivate        *bool    `json:"isPrivate"`
}

// ListParams are the organizer-scoped listing filters. Date matches the 24h
// window starting at the given day, not an exact timestamp.
type ListParams struct {
	Location string
	Date     string
	Category string
	Query    string // free text over title + description
	Page     int
	Limit    int
}

// SearchParams are the public discovery filters; results cross organizers.
type SearchParams struct {
	Location string
	Date     string // exact date value
	Category string
	Keyword  string // title substring
	SortBy   string // "date" or "popularity"
}

// EventPage is one page of an organizer-scoped listing
type EventPage struct {
	Events      []*domain.Event `json:"events"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalEvents int64           `json:"totalEvents"`
}

// EventUsecase defines the event business logic, layering ownership checks
// over the repository
type EventUsecase interface {
	// Create creates an event owned by organizerID
	Create(organizerID string, req *EventCreateRequest) (*domain.Event, error)

	// ListOwned returns a page of the caller's own events
	ListOwned(organizerID string, params ListParams) (*EventPage, error)

	// ListAllOwned returns every event owned by the caller
	ListAllOwned(organizerID string) ([]*domain.Event, error)

	// Update applies a partial update after an ownership check
	Update(callerID, id string, req *EventUpdateRequest) (*domain.Event, error)

	// Delete removes an event after an ownership check
	Delete(callerID, id string) error

	// Search is the public, unscoped discovery mode
	Search(params SearchParams) ([]*domain.Event, error)
}
