package middleware

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// forbiddenFields are server-managed and always stripped from incoming
// bodies so clients cannot forge them
var forbiddenFields = []string{"passingScore", "createdAt", "updatedAt"}

// Preflight short-circuits CORS preflight requests before authentication.
// Every OPTIONS request returns 200 with {message: "OK"}.
func Preflight(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodOptions {
		return c.Next()
	}
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")
	c.Set("Access-Control-Max-Age", "86400")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "OK"})
}

// StripForbiddenFields removes server-managed fields from JSON bodies
// before any handler parses them
func StripForbiddenFields(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Next()
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Non-object bodies pass through untouched; handlers reject them
		return c.Next()
	}

	changed := false
	for _, field := range forbiddenFields {
		if _, ok := parsed[field]; ok {
			delete(parsed, field)
			changed = true
		}
	}
	if changed {
		clean, err := json.Marshal(parsed)
		if err == nil {
			c.Request().SetBody(clean)
		}
	}
	return c.Next()
}
