package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDLocalKey).(string))
	})

	t.Run("generates id when absent", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, readBody(t, resp.Body))
	})

	t.Run("preserves caller id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "test-id-123")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "test-id-123", resp.Header.Get(RequestIDHeader))
		assert.Equal(t, "test-id-123", readBody(t, resp.Body))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		long := strings.Repeat("x", maxRequestIDLen+1)
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, long)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.NotEqual(t, long, resp.Header.Get(RequestIDHeader))
		assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	tests := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{"/ok", fiber.StatusAccepted, zapcore.InfoLevel},
		{"/missing", fiber.StatusNotFound, zapcore.WarnLevel},
		{"/boom", fiber.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set(RequestIDHeader, "rid-"+tt.path)
			_, err := app.Test(req)
			require.NoError(t, err)

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, tt.level, e.Level)
			assert.Equal(t, "http", e.LoggerName)

			fields := e.ContextMap()
			assert.Equal(t, "rid-"+tt.path, fields["request_id"])
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Contains(t, fields, "latency_ms")
		})
	}
}
