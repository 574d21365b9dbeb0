package middleware

import (
	"net/http"

	"github.com/treeplant/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts the last error recorded on the gin context into a JSON
// error body. Store failures that carry no domain kind surface as 500 with the
// underlying message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errdef.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errdef.IsDuplicated(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}
