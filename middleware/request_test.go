package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripForbiddenFields(t *testing.T) {
	app := fiber.New()
	app.Use(StripForbiddenFields)

	var seen map[string]interface{}
	app.Post("/echo", func(c *fiber.Ctx) error {
		seen = nil
		require.NoError(t, json.Unmarshal(c.Body(), &seen))
		return c.SendStatus(fiber.StatusOK)
	})

	body := `{"title":"Go 101","passingScore":90,"createdAt":"2024-01-01","updatedAt":"2024-01-02"}`
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "Go 101", seen["title"])
	assert.NotContains(t, seen, "passingScore")
	assert.NotContains(t, seen, "createdAt")
	assert.NotContains(t, seen, "updatedAt")
}

func TestPreflightShortCircuits(t *testing.T) {
	app := fiber.New()
	app.Use(Preflight)
	app.Get("/courses", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot) // must not be reached by OPTIONS
	})

	resp, err := app.Test(httptest.NewRequest("OPTIONS", "/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "OK", payload["message"])
}
