package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/go-randomstring/randomstring/internal/logger/adapter/fiber"

	"github.com/go-randomstring/randomstring/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	Status       int     `json:"status"`
	XPerformance float32 `json:"X-Performance"`
	URI          string  `json:"URI"`
	Method       string  `json:"method"`
	Error        string  `json:"error"`
}

func newTestApp(cfg adapter.Config) *fiber.App {
	app := fiber.New()
	app.Use(adapter.New(cfg))

	app.Get("/checkalive", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/api/v1/generate", func(c *fiber.Ctx) error {
		return c.SendString("abc")
	})
	app.Get("/broken", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "broken request")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		cfg        logger.Log
		targetPath string
		wantStatus int
		wantURI    string
		wantError  string
		wantNoLog  bool
	}{
		{
			name:       "logs request with query",
			targetPath: "/api/v1/generate?length=7",
			wantStatus: fiber.StatusOK,
			wantURI:    "/api/v1/generate?length=7",
		},
		{
			name:       "logs chain error",
			targetPath: "/broken",
			wantStatus: fiber.StatusBadRequest,
			wantURI:    "/broken",
			wantError:  "broken request",
		},
		{
			name:       "skips checkalive",
			cfg:        logger.Log{DisableCheckAlive: true},
			targetPath: "/checkalive",
			wantStatus: fiber.StatusOK,
			wantNoLog:  true,
		},
		{
			name:       "logs checkalive if enabled",
			targetPath: "/checkalive",
			wantStatus: fiber.StatusOK,
			wantURI:    "/checkalive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			app := newTestApp(adapter.Config{
				Config:        tt.cfg,
				CheckAliveURI: "/checkalive",
				Output:        &out,
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.targetPath, nil))
			require.NoError(t, err)

			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			if tt.wantNoLog {
				assert.Empty(t, out.String())
				return
			}

			var got expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &got))

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantURI, got.URI)
			assert.Equal(t, http.MethodGet, got.Method)
			assert.Equal(t, tt.wantError, got.Error)
		})
	}
}

func TestNextSkipsLogging(t *testing.T) {
	var out bytes.Buffer

	app := newTestApp(adapter.Config{
		Next:   func(_ *fiber.Ctx) bool { return true },
		Output: &out,
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/generate", nil))
	require.NoError(t, err)

	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out.String())
}
