package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/planhub/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminApp(token string) *fiber.App {
	cfg := &config.Config{AdminToken: token}
	app := fiber.New()
	app.Get("/admin/ping", AdminRequired(cfg), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAdminRequired(t *testing.T) {
	t.Run("missing token returns 401", func(t *testing.T) {
		app := newAdminApp("s3cret")

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong token returns 403", func(t *testing.T) {
		app := newAdminApp("s3cret")

		req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "wrong")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("unset server token never matches", func(t *testing.T) {
		app := newAdminApp("")

		req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		app := newAdminApp("s3cret")

		req := httptest.NewRequest(fiber.MethodGet, "/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "s3cret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
