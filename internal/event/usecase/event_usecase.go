package usecase

import (
	"fmt"
	"strings"
	"time"

	"evently-backend/internal/event/domain"
	"evently-backend/internal/event/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// eventUsecase implements EventUsecase interface
type eventUsecase struct {
	eventRepo repository.EventRepository
}

// NewEventUsecase creates a new instance of eventUsecase
func NewEventUsecase(eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
	}
}

func (u *eventUsecase) Create(organizerID string, req *EventCreateRequest) (*domain.Event, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	location := strings.TrimSpace(req.Location)
	if title == "" || description == "" || location == "" {
		return nil, fmt.Errorf("%w: title, description and location are required", domain.ErrValidation)
	}
	if req.TicketPrice < 0 || req.TicketsAvailable < 0 {
		return nil, fmt.Errorf("%w: ticketPrice and ticketsAvailable must be non-negative", domain.ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		OrganizerID:      organizerID,
		Title:            title,
		Description:      description,
		Date:             date,
		Time:             strings.TrimSpace(req.Time),
		Location:         location,
		Category:         strings.TrimSpace(req.Category),
		TicketPrice:      req.TicketPrice,
		TicketsAvailable: req.TicketsAvailable,
		IsPrivate:        req.IsPrivate,
	}
	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) ListOwned(organizerID string, params ListParams) (*EventPage, error) {
	filter := repository.EventFilter{
		OrganizerID: organizerID,
		Location:    params.Location,
		Category:    params.Category,
		TextQuery:   params.Query,
	}
	if params.Date != "" {
		start, err := parseDate(params.Date)
		if err != nil {
			return nil, err
		}
		filter.DayStart = &start
	}

	page := params.Page
	if page < 1 {
		page = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	skip := (page - 1) * limit

	events, total, err := u.eventRepo.Find(filter, repository.SortDateAsc, skip, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}

	return &EventPage{
		Events:      events,
		CurrentPage: page,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		TotalEvents: total,
	}, nil
}

func (u *eventUsecase) ListAllOwned(organizerID string) ([]*domain.Event, error) {
	events, _, err := u.eventRepo.Find(repository.EventFilter{OrganizerID: organizerID}, repository.SortNone, -1, -1)
	return events, err
}

func (u *eventUsecase) Update(callerID, id string, req *EventUpdateRequest) (*domain.Event, error) {
	event, err := u.requireOwned(callerID, id)
	if err != nil {
		return nil, err
	}

	// Required string fields keep their stored value when the incoming one
	// trims to empty; numeric and boolean fields apply on presence alone.
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			event.Title = title
		}
	}
	if req.Description != nil {
		if description := strings.TrimSpace(*req.Description); description != "" {
			event.Description = description
		}
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Time != nil {
		if t := strings.TrimSpace(*req.Time); t != "" {
			event.Time = t
		}
	}
	if req.Location != nil {
		if location := strings.TrimSpace(*req.Location); location != "" {
			event.Location = location
		}
	}
	if req.Category != nil {
		event.Category = strings.TrimSpace(*req.Category)
	}
	if req.TicketPrice != nil {
		if *req.TicketPrice < 0 {
			return nil, fmt.Errorf("%w: ticketPrice must be non-negative", domain.ErrValidation)
		}
		event.TicketPrice = *req.TicketPrice
	}
	if req.TicketsAvailable != nil {
		if *req.TicketsAvailable < 0 {
			return nil, fmt.Errorf("%w: ticketsAvailable must be non-negative", domain.ErrValidation)
		}
		event.TicketsAvailable = *req.TicketsAvailable
	}
	if req.IsPrivate != nil {
		event.IsPrivate = *req.IsPrivate
	}

	if err := u.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) Delete(callerID, id string) error {
	if _, err := u.requireOwned(callerID, id); err != nil {
		return err
	}
	return u.eventRepo.Delete(id)
}

func (u *eventUsecase) Search(params SearchParams) ([]*domain.Event, error) {
	filter := repository.EventFilter{
		Location: params.Location,
		Category: params.Category,
		Keyword:  params.Keyword,
	}
	if params.Date != "" {
		date, err := parseDate(params.Date)
		if err != nil {
			return nil, err
		}
		filter.DateExact = &date
	}

	sort := repository.SortNone
	switch params.SortBy {
	case "date":
		sort = repository.SortDateAsc
	case "popularity":
		sort = repository.SortPopularityDesc
	}

	events, _, err := u.eventRepo.Find(filter, sort, -1, -1)
	return events, err
}

// requireOwned loads an event and checks the caller is its organizer. The
// read and the later write are not transactional; concurrent writers race
// with last-write-wins semantics.
func (u *eventUsecase) requireOwned(callerID, id string) (*domain.Event, error) {
	event, err := u.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if event.OrganizerID != callerID {
		return nil, domain.ErrNotOwner
	}
	return event, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, value)
}
