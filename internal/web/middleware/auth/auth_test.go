package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-randomstring/randomstring/internal/web/middleware/auth"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		method     string
		header     string
		wantStatus int
	}{
		{name: "no token configured", method: http.MethodPost, wantStatus: fiber.StatusOK},
		{name: "read passes", token: "s3cret", method: http.MethodGet, wantStatus: fiber.StatusOK},
		{name: "missing header", token: "s3cret", method: http.MethodPost, wantStatus: fiber.StatusUnauthorized},
		{name: "wrong token", token: "s3cret", method: http.MethodDelete, header: "Bearer nope", wantStatus: fiber.StatusUnauthorized},
		{name: "wrong scheme", token: "s3cret", method: http.MethodPut, header: "Basic s3cret", wantStatus: fiber.StatusUnauthorized},
		{name: "valid token", token: "s3cret", method: http.MethodPost, header: "Bearer s3cret", wantStatus: fiber.StatusOK},
		{name: "scheme is case insensitive", token: "s3cret", method: http.MethodPost, header: "bearer s3cret", wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(tt.token))
			app.All("/", func(c *fiber.Ctx) error {
				return c.SendString("ok")
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			_ = resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
