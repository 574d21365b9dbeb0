package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/treeplant/event-manager/internal/errdef"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "123")

	id, ok := GetPathParameter(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
}

func TestGetPathParameter_Malformed(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "not-an-id")

	id, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, errdef.IsBadRequest(ctx.Errors.Last()))
}

func TestGetPathParameter_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	_, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, errdef.IsBadRequest(ctx.Errors.Last()))
}
