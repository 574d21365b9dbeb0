package handler

import (
	"github.com/treeplant/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
)

// DataBinder binds the request body onto req. Binding failures, including
// missing required fields and unparsable values, surface as bad request errors
// on the gin context.
func DataBinder(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		err := errdef.NewBadRequest("error binding data: %v", err)
		_ = c.Error(err)
		return err
	}

	return nil
}
