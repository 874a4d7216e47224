package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

const testSecret = "test-jwt-secret"

// newAuthTestApp monta el middleware con una ruta pública y una que exige
// identidad, igual que lo hacen los handlers reales.
func newAuthTestApp() *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app.Use(OptionalAuth(testSecret, log))

	app.Get("/public", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c)})
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return unauthenticated(c)
		}
		return c.JSON(fiber.Map{
			"id":    claims.UserID,
			"email": claims.Email,
		})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "carla@acme.com", "Carla", "Mendez", "test", 1)
	require.NoError(t, err)
	return token
}

func TestOptionalAuthValidToken(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuthAbsentHeader(t *testing.T) {
	app := newAuthTestApp()

	// Sin header la ruta pública responde normal con identidad vacía.
	resp, err := app.Test(httptest.NewRequest("GET", "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Pero la ruta que exige identidad devuelve 401.
	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthInvalidTokenStaysAnonymous(t *testing.T) {
	app := newAuthTestApp()

	for _, header := range []string{
		"Bearer token-basura",
		"Basic abc123",
		"Bearer",
	} {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		require.NoError(t, err)
		// El token inválido no corta el request: sigue anónimo y el handler
		// responde 401 por falta de identidad.
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestOptionalAuthExpiredToken(t *testing.T) {
	app := newAuthTestApp()

	expired, err := jwt.Generate(testSecret, "user-1", "carla@acme.com", "Carla", "Mendez", "test", -1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthWrongSecret(t *testing.T) {
	app := newAuthTestApp()

	forged, err := jwt.Generate("otro-secreto", "user-1", "carla@acme.com", "Carla", "Mendez", "test", 1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
