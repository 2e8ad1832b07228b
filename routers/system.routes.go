package routers

import (
	"errors"
	"time"

	"edtech/logger"
	"edtech/middleware"

	"github.com/gofiber/fiber/v2"
)

// availableEndpoints is returned on unknown routes
var availableEndpoints = []string{
	"GET /health",
	"GET|POST|PUT|DELETE /courses",
	"GET|POST|DELETE /enroll",
	"GET|POST|PUT|DELETE /lessons",
	"GET|POST|PUT|DELETE /quizzes",
	"GET|POST|PUT|DELETE /quiz-questions",
	"GET|POST /progress",
	"GET|POST /quiz-attempts",
	"GET|POST /transactions",
	"GET|POST /ranks",
	"GET|POST /badges",
	"GET|POST /user-badges",
	"GET|POST|PUT /notifications",
}

// SetupSystemRoutes registers health, diagnostics and the upload stub
func SetupSystemRoutes(app *fiber.App, log *logger.DiscordLogger) {
	health := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":   true,
			"message":   "EdTech API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
	app.Get("/", health)
	app.Get("/health", health)

	// Diagnostic route: emits one event of every level to the webhook
	app.Get("/test-discord", func(c *fiber.Ctx) error {
		log.Success("Discord Test", map[string]interface{}{
			"message":  "Discord webhook is working correctly! 🎉",
			"endpoint": "/test-discord",
			"status":   "Active",
		})
		log.Info("API Test Information", map[string]interface{}{
			"testType": "Discord Integration",
			"result":   "Success",
		})
		log.Warning("Test Warning", map[string]interface{}{
			"message": "This is a test warning message",
		})
		log.Error("Test Error", errors.New("this is a test error"), map[string]interface{}{
			"endpoint": "/test-discord",
		})
		log.Debug("Test Debug", map[string]interface{}{
			"message": "This is a test debug message",
		})

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":        true,
			"message":        "Discord test messages sent successfully",
			"webhookEnabled": log.Enabled,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/upload", middleware.Authenticate, func(c *fiber.Ctx) error {
		return middleware.ErrorResponse(c, fiber.StatusNotImplemented, "File upload endpoint not implemented yet")
	})
}

// NotFound answers unknown resource/method combinations with the supported
// route list. Registered after all routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success":            false,
		"error":              "Endpoint not found",
		"availableEndpoints": availableEndpoints,
	})
}
