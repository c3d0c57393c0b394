package webapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/harubank/account/internal/fixtures/mocks"
	"github.com/harubank/account/pkg/app"
	"github.com/harubank/account/pkg/config"
	"github.com/harubank/account/webapi"
	"github.com/harubank/account/webapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	fiberlog.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func newTestApp(maxRequests int) *fiber.App {
	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: maxRequests,
			Window:      time.Minute,
		},
		Transaction: config.Transaction{CancelWindow: 365 * 24 * time.Hour},
	}
	application := app.New(&app.Deps{
		Uow:    mocks.NewMockUnitOfWork(),
		Logger: slog.Default(),
	}, cfg)
	return webapi.SetupApp(application)
}

func TestSetupApp_RoutesRegistered(t *testing.T) {
	t.Parallel()
	fiberApp := newTestApp(100)

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/account"},
		{fiber.MethodDelete, "/account"},
		{fiber.MethodGet, "/account"},
		{fiber.MethodGet, "/account/1"},
		{fiber.MethodPost, "/transaction/use"},
		{fiber.MethodPost, "/transaction/cancel"},
		{fiber.MethodGet, "/transaction/abc"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode,
			"%s %s should be routed", tt.method, tt.path)
		_ = resp.Body.Close()
	}
}

func TestSetupApp_UnknownRouteKeepsRouterError(t *testing.T) {
	t.Parallel()
	fiberApp := newTestApp(100)

	req := httptest.NewRequest(fiber.MethodGet, "/no-such-route", nil)
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var problem common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	assert.Equal(t, "Not Found", problem.Title)
	assert.NotEqual(t, "INTERNAL_SERVER_ERROR", problem.Title,
		"a routing miss is not an internal failure")
}

func TestSetupApp_MethodNotAllowedKeepsRouterError(t *testing.T) {
	t.Parallel()
	fiberApp := newTestApp(100)

	req := httptest.NewRequest(fiber.MethodPatch, "/transaction/use", nil)
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	var problem common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	assert.Equal(t, "Method Not Allowed", problem.Title)
}

func TestSetupApp_RateLimitExceeded(t *testing.T) {
	t.Parallel()
	fiberApp := newTestApp(2)

	var last *http.Response
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(fiber.MethodGet, "/account?user_id=x", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		if last != nil {
			_ = last.Body.Close()
		}
		last = resp
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last.StatusCode)

	var problem common.ProblemDetails
	require.NoError(t, json.NewDecoder(last.Body).Decode(&problem))
	_ = last.Body.Close()
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", problem.Title)
}

func TestSetupApp_RateLimitKeyedByForwardedFor(t *testing.T) {
	t.Parallel()
	fiberApp := newTestApp(1)

	// Distinct forwarded addresses get separate quotas.
	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		req := httptest.NewRequest(fiber.MethodGet, "/account?user_id=x", nil)
		req.Header.Set("X-Forwarded-For", ip+", 192.168.0.1")
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	}

	// A repeat from the first address is over its quota.
	req := httptest.NewRequest(fiber.MethodGet, "/account?user_id=x", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	_ = resp.Body.Close()
}
