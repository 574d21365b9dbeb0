package handler

import (
	"strconv"

	"github.com/treeplant/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
)

// GetPathParameter parses a path parameter as a store-generated identifier.
// Malformed identifiers are rejected before any lookup happens.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("invalid %s format, received: %s", parameter, idParam))
		return 0, false
	}
	return uint(id), true
}
