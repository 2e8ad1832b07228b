package middleware

import (
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// studentWrites enumerates the mutations a student may perform. Everything
// else a student does must be a read.
var studentWrites = map[string]map[string]bool{
	fiber.MethodPost: {
		"enroll":        true,
		"quiz-attempts": true,
		"progress":      true,
	},
	fiber.MethodPut: {
		"notifications": true,
	},
}

// CheckPermission decides whether a role may perform verb on resource.
// Admins are permitted everything; students all reads plus the writes
// above; any other role nothing.
func CheckPermission(role, verb, resource string) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleStudent:
		if verb == fiber.MethodGet {
			return true
		}
		return studentWrites[verb][resource]
	}
	return false
}

// RequirePermission guards a route group for the named resource. It must
// run after Authenticate so the caller's role is in the request context.
func RequirePermission(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
		}
		if !CheckPermission(role, c.Method(), resource) {
			return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
		}
		return c.Next()
	}
}
