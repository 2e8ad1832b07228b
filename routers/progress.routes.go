package routers

import (
	controllers "edtech/controllers/progress"
	"edtech/logger"
	"edtech/middleware"
	"edtech/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes registers user progress routes
func SetupProgressRoutes(app *fiber.App, log *logger.DiscordLogger) {
	progress := app.Group("/progress", middleware.Authenticate, middleware.RequirePermission("progress"))
	progress.Get("/", controllers.ListProgress(log))
	progress.Post("/", validators.RequireBody("progress"), controllers.UpsertProgress(log))
}
