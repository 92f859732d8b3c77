package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtected(t *testing.T) {
	const secret = "test-secret"

	signed := func(key string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "student-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		s, err := token.SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{name: "disabled without secret", secret: "", wantStatus: fiber.StatusOK},
		{name: "missing token", secret: secret, wantStatus: fiber.StatusBadRequest},
		{name: "wrong signature", secret: secret, header: "Bearer " + signed("other"), wantStatus: fiber.StatusUnauthorized},
		{name: "valid token", secret: secret, header: "Bearer " + signed(secret), wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/api/ping", Protected(tt.secret), func(c *fiber.Ctx) error {
				return c.SendString("pong")
			})

			req := httptest.NewRequest(fiber.MethodGet, "/api/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
