package eventjoin

import (
	"context"
	"net/http"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/internal/handler"
	"github.com/treeplant/event-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(joinService joinService) Handler {
	return Handler{
		joinService: joinService,
	}
}

type Handler struct {
	joinService joinService
}

type joinService interface {
	Join(ctx context.Context, eventID uint, userEmail string, joinedAt time.Time) (*model.EventJoin, error)
	FindJoinedEvents(ctx context.Context, userEmail string) ([]model.Event, error)
}

type JoinRequest struct {
	EventID   uint      `json:"eventId" binding:"required"`
	UserEmail string    `json:"userEmail" binding:"required"`
	JoinedAt  time.Time `json:"joinedAt" binding:"required"`
}

// Join event
func (h Handler) Join(c *gin.Context) {
	// swagger:route POST /event-joins joinEvent
	//
	// Join event
	//
	// Register interest in an event. A user can join an event once; there is no
	// leave operation, joins only go away when their event is deleted.
	//
	// responses:
	//   201: CreatedResponse
	//   400: Error
	//   404: Error
	//   409: Error
	var request JoinRequest

	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	join, err := h.joinService.Join(c.Request.Context(), request.EventID, request.UserEmail, request.JoinedAt)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Successfully joined the event", "joinId": join.ID})
}

// FindMyJoinedEvents events
func (h Handler) FindMyJoinedEvents(c *gin.Context) {
	// swagger:route GET /event-joins/my-events listJoinedEvents
	//
	// List joined events
	//
	// All events the given email has joined, soonest first.
	//
	// responses:
	//   200: Events
	//   400: Error
	userEmail := c.Query("userEmail")
	if userEmail == "" {
		_ = c.Error(errdef.NewBadRequest("userEmail is required and must be a string"))
		return
	}

	events, err := h.joinService.FindJoinedEvents(c.Request.Context(), userEmail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}
