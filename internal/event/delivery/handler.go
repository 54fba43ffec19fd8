package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"evently-backend/internal/event/domain"
	"evently-backend/internal/event/usecase"

	"github.com/gin-gonic/gin"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
	}
}

// CreateEvent creates a new event owned by the authenticated user
// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := h.eventUsecase.Create(userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvents returns a filtered, paginated page of the caller's own events
// GET /events?location=&date=&category=&q=&page=&limit=
func (h *EventHandler) GetEvents(c *gin.Context) {
	userID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	params := usecase.ListParams{
		Location: c.Query("location"),
		Date:     c.Query("date"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Page:     page,
		Limit:    limit,
	}

	result, err := h.eventUsecase.ListOwned(userID, params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOrganizerEvents returns every event owned by the caller
// GET /events/organizer
func (h *EventHandler) GetOrganizerEvents(c *gin.Context) {
	userID := c.GetString("userID")

	events, err := h.eventUsecase.ListAllOwned(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	// Return an empty array instead of null when the caller owns nothing
	if events == nil {
		events = []*domain.Event{}
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent applies a partial update to an event the caller owns
// PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID := c.GetString("userID")
	eventID := c.Param("id")

	var req usecase.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := h.eventUsecase.Update(userID, eventID, &req)
	if err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event the caller owns
// DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID := c.GetString("userID")
	eventID := c.Param("id")

	if err := h.eventUsecase.Delete(userID, eventID); err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}

// Search is the public discovery endpoint; results are not scoped to any
// organizer
// GET /search?location=&date=&category=&keyword=&sortBy=
func (h *EventHandler) Search(c *gin.Context) {
	params := usecase.SearchParams{
		Location: c.Query("location"),
		Date:     c.Query("date"),
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		SortBy:   c.Query("sortBy"),
	}

	events, err := h.eventUsecase.Search(params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if events == nil {
		events = []*domain.Event{}
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authorized"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
	}
}
