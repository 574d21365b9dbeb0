package user

import (
	"context"
	"net/http"

	"github.com/treeplant/event-manager/internal/handler"
	"github.com/treeplant/event-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(userService userService) Handler {
	return Handler{
		userService: userService,
	}
}

type Handler struct {
	userService userService
}

type userService interface {
	Register(ctx context.Context, email string, name string) (*model.User, bool, error)
}

type RegisterRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// Register user
func (h Handler) Register(c *gin.Context) {
	// swagger:route POST /users registerUser
	//
	// Register user
	//
	// Register a user by email. Registering an already registered email is not
	// an error; the existing user is kept untouched. There is no
	// authentication, the caller-supplied email is trusted as is.
	//
	// responses:
	//   200: ExistsResponse
	//   201: CreatedResponse
	//   400: Error
	var request RegisterRequest

	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	user, inserted, err := h.userService.Register(c.Request.Context(), request.Email, request.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !inserted {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "inserted": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "insertedId": user.ID})
}
