package validators

import (
	"strconv"
	"strings"

	"edtech/middleware"

	"github.com/gofiber/fiber/v2"
)

// RequireID validates the :id path parameter and stashes it in the request
// context as a uint
func RequireID(label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, label+" ID is required!")
		}

		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+label+" ID!")
		}

		c.Locals("id", uint(id))
		return c.Next()
	}
}
