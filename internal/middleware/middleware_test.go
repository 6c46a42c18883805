package middleware

import (
	"net/http/httptest"
	"testing"

	"FreshStock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	jwtService := jwt.NewJWTService()

	app := fiber.New()
	app.Get("/protected", NewMiddleware().AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app, jwtService
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", "definitely-not-a-token")
	res, err := app.Test(req)
	require.NoError(t, err)

	// Invalid and expired tokens are a 401, never a 500.
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app, jwtService := newProtectedApp(t)

	token, err := jwtService.GenerateToken("user-123")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("x-auth-token", token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
