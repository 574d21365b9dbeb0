package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/treeplant/event-manager/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&buf, nil)))

	ctx := middleware.NewContextWithCorrelationID(context.Background(), "some-id")
	logger.InfoContext(ctx, "some message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "some-id", record[middleware.RequestLoggerKeyCorrelationID])
	assert.Equal(t, "some message", record["msg"])
}

func TestContextHandlerWithoutCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&buf, nil)))

	logger.Info("some message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, middleware.RequestLoggerKeyCorrelationID)
}
