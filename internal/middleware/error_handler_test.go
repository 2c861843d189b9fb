package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.New(core))})
	app.Use(RequestIDMiddleware())
	app.Get("/boom", func(c fiber.Ctx) error {
		return errors.New("connection refused: secret-host:5432")
	})
	app.Get("/missing", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	})
	return app, logs
}

func decode(t *testing.T, body io.Reader) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler_InternalError(t *testing.T) {
	app, logs := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Internal Server Error", body["error"])

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "/boom", entry.ContextMap()["path"])
	assert.NotEmpty(t, entry.ContextMap()["request_id"])
}

func TestErrorHandler_ClientError(t *testing.T) {
	app, logs := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "product not found", decode(t, resp.Body)["error"])
	assert.Zero(t, logs.Len())
}

func TestRequestIDMiddleware(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/id", func(c fiber.Ctx) error {
		return c.SendString(RequestID(c))
	})

	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "abc-123", string(body))
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/id", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Len(t, string(body), 36)
}
