package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/pkg/logger"
)

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewRecoveryMiddleware())
	app.Get("/panic", func(fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))
}

func TestRequestContextMiddleware(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "error")
	require.NoError(t, err)

	var (
		gotID     string
		gotLogger *logger.Logger
	)

	app := fiber.New()
	app.Use(middleware.NewRequestContextMiddleware(testLogger))
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/", func(c fiber.Ctx) error {
		requestCtx := middleware.RequestContext(c)
		gotID, _ = logger.GetRequestID(requestCtx)
		gotLogger, _ = logger.FromContext(requestCtx)
		return c.SendStatus(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "abc", gotID)
	assert.Same(t, testLogger, gotLogger)
	assert.Equal(t, "abc", resp.Header.Get(middleware.HeaderRequestID))
}

func TestRequestContextFallback(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		assert.NotNil(t, middleware.RequestContext(c))
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
