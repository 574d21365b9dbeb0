package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type datedRequest struct {
	Date time.Time `json:"date" binding:"required,future"`
}

func bindDated(t *testing.T, date time.Time) error {
	t.Helper()

	body, err := json.Marshal(map[string]any{"date": date})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	request := httptest.NewRequest("POST", "/events", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	ctx.Request = request

	var req datedRequest
	return DataBinder(ctx, &req)
}

func TestFutureValidation(t *testing.T) {
	require.NoError(t, RegisterValidation())

	t.Run("future date passes", func(t *testing.T) {
		assert.NoError(t, bindDated(t, time.Now().Add(24*time.Hour)))
	})

	t.Run("past date fails", func(t *testing.T) {
		assert.Error(t, bindDated(t, time.Now().Add(-time.Minute)))
	})

	t.Run("zero date fails required", func(t *testing.T) {
		assert.Error(t, bindDated(t, time.Time{}))
	})
}
