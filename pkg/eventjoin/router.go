package eventjoin

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, handler Handler) {
	r.POST("/event-joins", handler.Join)
	r.GET("/event-joins/my-events", handler.FindMyJoinedEvents)
}
