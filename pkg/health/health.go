package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the plain text liveness endpoint served at the root route.
func Health(c *gin.Context) {
	// swagger:route GET / health
	//
	// Liveness
	//
	// responses:
	//   200:
	c.String(http.StatusOK, "Server is running successfully")
}
