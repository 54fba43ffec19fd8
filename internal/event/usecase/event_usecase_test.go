package usecase

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"evently-backend/internal/event/domain"
	"evently-backend/internal/event/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo mirrors the repository's filter contract in memory.
type fakeEventRepo struct {
	events  []*domain.Event
	nextID  int
	deleted []string
}

func (r *fakeEventRepo) Create(event *domain.Event) error {
	r.nextID++
	event.ID = fmt.Sprintf("event-%d", r.nextID)
	event.CreatedAt = time.Now()
	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

func (r *fakeEventRepo) FindByID(id string) (*domain.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) Find(filter repository.EventFilter, order repository.EventSort, skip, limit int) ([]*domain.Event, int64, error) {
	var matched []*domain.Event
	for _, e := range r.events {
		if r.matches(e, filter) {
			clone := *e
			matched = append(matched, &clone)
		}
	}

	switch order {
	case repository.SortDateAsc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	case repository.SortPopularityDesc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Popularity > matched[j].Popularity })
	}

	total := int64(len(matched))
	if skip > 0 {
		if skip >= len(matched) {
			matched = nil
		} else {
			matched = matched[skip:]
		}
	}
	if limit >= 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeEventRepo) matches(e *domain.Event, f repository.EventFilter) bool {
	if f.OrganizerID != "" && e.OrganizerID != f.OrganizerID {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(e.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.DayStart != nil {
		end := f.DayStart.Add(24 * time.Hour)
		if e.Date.Before(*f.DayStart) || !e.Date.Before(end) {
			return false
		}
	}
	if f.DateExact != nil && !e.Date.Equal(*f.DateExact) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.TextQuery != "" {
		text := strings.ToLower(e.Title + " " + e.Description)
		if !strings.Contains(text, strings.ToLower(f.TextQuery)) {
			return false
		}
	}
	if f.Keyword != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.Keyword)) {
		return false
	}
	return true
}

func (r *fakeEventRepo) Update(event *domain.Event) error {
	for i, e := range r.events {
		if e.ID == event.ID {
			clone := *event
			r.events[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeEventRepo) Delete(id string) error {
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return nil
}

func validCreateRequest() *EventCreateRequest {
	return &EventCreateRequest{
		Title:            "Go Meetup",
		Description:      "Monthly Go meetup",
		Date:             "2024-05-01T18:00:00",
		Time:             "18:00",
		Location:         "Berlin",
		TicketPrice:      15,
		TicketsAvailable: 100,
	}
}

func TestCreate_TrimsAndDefaults(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	req := validCreateRequest()
	req.Title = "  Go Meetup  "
	req.Location = " Berlin "
	event, err := uc.Create("user-a", req)
	require.NoError(t, err)

	assert.Equal(t, "Go Meetup", event.Title)
	assert.Equal(t, "Berlin", event.Location)
	assert.Equal(t, "user-a", event.OrganizerID)
	assert.False(t, event.IsPrivate)
	assert.NotEmpty(t, event.ID)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	uc := NewEventUsecase(&fakeEventRepo{})

	req := validCreateRequest()
	req.Title = "   "
	_, err := uc.Create("user-a", req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = validCreateRequest()
	req.Date = "not-a-date"
	_, err = uc.Create("user-a", req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = validCreateRequest()
	req.TicketPrice = -1
	_, err = uc.Create("user-a", req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListOwned_ScopedToOrganizer(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	_, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)
	reqB := validCreateRequest()
	reqB.Title = "Rust Meetup"
	_, err = uc.Create("user-b", reqB)
	require.NoError(t, err)

	page, err := uc.ListOwned("user-a", ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Equal(t, "Go Meetup", page.Events[0].Title)
	assert.EqualValues(t, 1, page.TotalEvents)
}

func TestListOwned_Pagination(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	for i := 0; i < 25; i++ {
		req := validCreateRequest()
		req.Title = fmt.Sprintf("Event %d", i)
		req.Date = fmt.Sprintf("2024-06-%02d", i%28+1)
		_, err := uc.Create("user-a", req)
		require.NoError(t, err)
	}

	page1, err := uc.ListOwned("user-a", ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Events, 10)
	assert.Equal(t, 1, page1.CurrentPage)
	assert.Equal(t, 3, page1.TotalPages)
	assert.EqualValues(t, 25, page1.TotalEvents)

	page3, err := uc.ListOwned("user-a", ListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Events, 5)
	assert.Equal(t, 3, page3.CurrentPage)
}

func TestListOwned_DateDayWindow(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	req := validCreateRequest()
	req.Date = "2024-05-01T18:00:00"
	_, err := uc.Create("user-a", req)
	require.NoError(t, err)

	page, err := uc.ListOwned("user-a", ListParams{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Len(t, page.Events, 1)

	page, err = uc.ListOwned("user-a", ListParams{Date: "2024-05-02"})
	require.NoError(t, err)
	assert.Empty(t, page.Events)
}

func TestListOwned_SortedByDateAsc(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	for _, d := range []string{"2024-07-03", "2024-07-01", "2024-07-02"} {
		req := validCreateRequest()
		req.Title = "On " + d
		req.Date = d
		_, err := uc.Create("user-a", req)
		require.NoError(t, err)
	}

	page, err := uc.ListOwned("user-a", ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Events, 3)
	assert.Equal(t, "On 2024-07-01", page.Events[0].Title)
	assert.Equal(t, "On 2024-07-03", page.Events[2].Title)
}

func TestUpdate_OwnershipGuard(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	event, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)

	title := "Hijacked"
	_, err = uc.Update("user-b", event.ID, &EventUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = uc.Update("user-a", "missing-id", &EventUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_PartialFieldsPreserved(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	event, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)

	location := "Hamburg"
	updated, err := uc.Update("user-a", event.ID, &EventUpdateRequest{Location: &location})
	require.NoError(t, err)

	assert.Equal(t, "Hamburg", updated.Location)
	assert.Equal(t, event.Title, updated.Title)
	assert.Equal(t, event.TicketPrice, updated.TicketPrice)
	assert.Equal(t, event.OrganizerID, updated.OrganizerID)
}

func TestUpdate_ZeroPriceApplied(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	event, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)
	require.NotZero(t, event.TicketPrice)

	price := 0.0
	updated, err := uc.Update("user-a", event.ID, &EventUpdateRequest{TicketPrice: &price})
	require.NoError(t, err)
	assert.Zero(t, updated.TicketPrice)

	stored, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.TicketPrice)
}

func TestUpdate_EmptyTitleKeepsStored(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	event, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)

	empty := "  "
	updated, err := uc.Update("user-a", event.ID, &EventUpdateRequest{Title: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", updated.Title)
}

func TestDelete_OwnershipGuard(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	event, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)

	err = uc.Delete("user-b", event.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	err = uc.Delete("user-a", "missing-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("user-a", event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{event.ID}, repo.deleted)
}

func TestSearch_CrossesOrganizers(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	_, err := uc.Create("user-a", validCreateRequest())
	require.NoError(t, err)
	reqB := validCreateRequest()
	reqB.Title = "Go Conference"
	_, err = uc.Create("user-b", reqB)
	require.NoError(t, err)

	events, err := uc.Search(SearchParams{Keyword: "go"})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestSearch_Filters(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	music := validCreateRequest()
	music.Title = "Jazz Night"
	music.Category = "music"
	music.Location = "New Orleans"
	_, err := uc.Create("user-a", music)
	require.NoError(t, err)

	tech := validCreateRequest()
	tech.Title = "Go Meetup"
	tech.Category = "tech"
	_, err = uc.Create("user-b", tech)
	require.NoError(t, err)

	events, err := uc.Search(SearchParams{Category: "music"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Jazz Night", events[0].Title)

	events, err = uc.Search(SearchParams{Location: "orleans"})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	events, err = uc.Search(SearchParams{Keyword: "meetup"})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSearch_SortByPopularity(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	uc := NewEventUsecase(repo)

	for i, title := range []string{"Quiet Show", "Big Show"} {
		req := validCreateRequest()
		req.Title = title
		event, err := uc.Create("user-a", req)
		require.NoError(t, err)
		stored, err := repo.FindByID(event.ID)
		require.NoError(t, err)
		stored.Popularity = i * 100
		require.NoError(t, repo.Update(stored))
	}

	events, err := uc.Search(SearchParams{SortBy: "popularity"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Big Show", events[0].Title)
}
