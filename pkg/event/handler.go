package event

import (
	"context"
	"net/http"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/internal/handler"
	"github.com/treeplant/event-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{
		eventService: eventService,
	}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, event model.Event) (*model.Event, error)
	FindUpcoming(ctx context.Context) ([]model.Event, error)
	FindByOwner(ctx context.Context, userEmail string) ([]model.Event, error)
	FindById(ctx context.Context, id uint) (*model.Event, error)
	Update(ctx context.Context, id uint, event model.Event) (*model.Event, error)
	Delete(ctx context.Context, id uint, userEmail string) error
}

// EventRequest is the full field set of an event. Updates rebuild the record
// from it, they don't patch.
type EventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	EventType   string    `json:"eventType" binding:"required"`
	Thumbnail   string    `json:"thumbnail" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Date        time.Time `json:"date" binding:"required,future"`
	UserEmail   string    `json:"userEmail" binding:"required"`
}

func (r EventRequest) toEvent() model.Event {
	return model.Event{
		Title:       r.Title,
		Description: r.Description,
		EventType:   r.EventType,
		Thumbnail:   r.Thumbnail,
		Location:    r.Location,
		Date:        r.Date,
		UserEmail:   r.UserEmail,
	}
}

// UpdateRequest is the replacement field set for an update. Only userEmail is
// checked at binding time; the remaining fields are validated after the
// existence and ownership checks, so a non-owner gets the authorization error
// no matter what the payload looks like.
type UpdateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType"`
	Thumbnail   string    `json:"thumbnail"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	UserEmail   string    `json:"userEmail" binding:"required"`
}

func (r UpdateRequest) toEvent() model.Event {
	return model.Event{
		Title:       r.Title,
		Description: r.Description,
		EventType:   r.EventType,
		Thumbnail:   r.Thumbnail,
		Location:    r.Location,
		Date:        r.Date,
		UserEmail:   r.UserEmail,
	}
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create a tree-planting event. All fields are required and the date has to
	// be in the future.
	//
	// responses:
	//   201: CreatedResponse
	//   400: Error
	var request EventRequest

	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), request.toEvent())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "eventId": event.ID})
}

// FindUpcoming events
func (h Handler) FindUpcoming(c *gin.Context) {
	// swagger:route GET /events/upcoming listUpcomingEvents
	//
	// List upcoming events
	//
	// All events with a date after now, soonest first.
	//
	// responses:
	//   200: Events
	events, err := h.eventService.FindUpcoming(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// FindMyEvents events
func (h Handler) FindMyEvents(c *gin.Context) {
	// swagger:route GET /events/my-events listMyEvents
	//
	// List my events
	//
	// All events owned by the given email, matched case-insensitively.
	//
	// responses:
	//   200: Events
	//   400: Error
	userEmail := c.Query("userEmail")
	if userEmail == "" {
		_ = c.Error(errdef.NewBadRequest("userEmail is required and must be a string"))
		return
	}

	events, err := h.eventService.FindByOwner(c.Request.Context(), userEmail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} updateEvent
	//
	// Update event
	//
	// Replace the full field set of an event. Only the owner may update an
	// event; the caller-supplied userEmail is trusted as the acting user.
	//
	// responses:
	//   200: MessageResponse
	//   400: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	_, err := h.eventService.Update(c.Request.Context(), id, request.toEvent())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event and all join records referencing it. Only the owner may
	// delete an event.
	//
	// responses:
	//   200: MessageResponse
	//   400: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	userEmail := c.Query("userEmail")
	if userEmail == "" {
		_ = c.Error(errdef.NewBadRequest("userEmail is required and must be a string"))
		return
	}

	err := h.eventService.Delete(c.Request.Context(), id, userEmail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
