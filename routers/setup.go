package routers

import (
	"edtech/logger"
	"edtech/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Setup wires the full middleware chain and route set onto the app. The
// order matters: preflight short-circuits before anything else, the body
// scrubber runs before any handler parses a body, and the 404 fallback is
// registered last.
func Setup(app *fiber.App, log *logger.DiscordLogger) {
	app.Use(middleware.Preflight)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-User-ID",
	}))

	app.Use(middleware.StripForbiddenFields)

	SetupSystemRoutes(app, log)
	SetupCourseRoutes(app, log)
	SetupQuizRoutes(app, log)
	SetupProgressRoutes(app, log)
	SetupGamificationRoutes(app, log)
	SetupNotificationRoutes(app, log)

	app.Use(NotFound)
}
