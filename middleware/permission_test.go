package middleware

import (
	"testing"

	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCheckPermissionAdmin(t *testing.T) {
	resources := []string{
		"courses", "lessons", "quizzes", "quiz-questions", "progress",
		"quiz-attempts", "transactions", "ranks", "badges", "user-badges",
		"notifications", "enroll",
	}
	verbs := []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete}

	for _, resource := range resources {
		for _, verb := range verbs {
			assert.True(t, CheckPermission(models.RoleAdmin, verb, resource),
				"admin should be allowed %s on %s", verb, resource)
		}
	}
}

func TestCheckPermissionStudent(t *testing.T) {
	tests := []struct {
		verb     string
		resource string
		allowed  bool
	}{
		// all reads allowed
		{fiber.MethodGet, "courses", true},
		{fiber.MethodGet, "transactions", true},
		{fiber.MethodGet, "notifications", true},
		{fiber.MethodGet, "enroll", true},

		// permitted writes
		{fiber.MethodPost, "enroll", true},
		{fiber.MethodPost, "quiz-attempts", true},
		{fiber.MethodPost, "progress", true},
		{fiber.MethodPut, "notifications", true},

		// denied writes
		{fiber.MethodPost, "courses", false},
		{fiber.MethodPost, "lessons", false},
		{fiber.MethodPost, "quizzes", false},
		{fiber.MethodPost, "quiz-questions", false},
		{fiber.MethodPost, "badges", false},
		{fiber.MethodPost, "transactions", false},
		{fiber.MethodPost, "ranks", false},
		{fiber.MethodPost, "user-badges", false},
		{fiber.MethodPost, "notifications", false},
		{fiber.MethodPut, "courses", false},
		{fiber.MethodDelete, "courses", false},
		{fiber.MethodDelete, "enroll", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CheckPermission(models.RoleStudent, tt.verb, tt.resource),
			"student %s on %s", tt.verb, tt.resource)
	}
}

func TestCheckPermissionUnknownRole(t *testing.T) {
	for _, role := range []string{"", "teacher", "moderator", "ADMIN"} {
		assert.False(t, CheckPermission(role, fiber.MethodGet, "courses"), "role %q", role)
		assert.False(t, CheckPermission(role, fiber.MethodPost, "enroll"), "role %q", role)
	}
}
