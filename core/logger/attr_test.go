package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/assetkit/assetkit/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil_error_returns_empty_attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(nil)
		assert.Equal(t, slog.Attr{}, attr)
	})

	t.Run("non_nil_error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestEmptyValueHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.AssetClass(""))
	assert.Equal(t, slog.Attr{}, logger.ContentType(""))
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))

	assert.Equal(t, "asset_class", logger.AssetClass("admin").Key)
	assert.Equal(t, "content_type", logger.ContentType("text/html").Key)
	assert.Equal(t, "request_id", logger.RequestID("abc").Key)
}

func TestSimpleHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "component", logger.Component("assets").Key)
	assert.Equal(t, "path", logger.Path("/x").Key)
	assert.Equal(t, "method", logger.Method("GET").Key)
	assert.Equal(t, "status_code", logger.StatusCode(206).Key)
	assert.Equal(t, int64(42), logger.Size(42).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}
