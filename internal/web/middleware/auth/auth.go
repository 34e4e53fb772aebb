package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "bearer "

// New returns a middleware that requires token on state changing requests.
// An empty token disables the check.
func New(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" || IsReadOnly(c) {
			return c.Next()
		}

		if !validToken(c.Get(fiber.HeaderAuthorization), token) {
			log.Warn().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("rejected request without valid api token")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing or invalid api token",
			})
		}

		return c.Next()
	}
}

// IsReadOnly checks if the current request does not change state.
func IsReadOnly(c *fiber.Ctx) bool {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return true
	default:
		return false
	}
}

func validToken(header, token string) bool {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(header[len(bearerPrefix):]), []byte(token)) == 1
}
