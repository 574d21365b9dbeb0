package event

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, handler Handler) {
	r.POST("/events", handler.Create)
	r.GET("/events/upcoming", handler.FindUpcoming)
	r.GET("/events/my-events", handler.FindMyEvents)
	r.GET("/events/:id", handler.FindById)
	r.PUT("/events/:id", handler.Update)
	r.DELETE("/events/:id", handler.Delete)
}
