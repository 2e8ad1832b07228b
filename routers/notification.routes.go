package routers

import (
	controllers "edtech/controllers/notification"
	"edtech/logger"
	"edtech/middleware"
	"edtech/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes registers notification routes
func SetupNotificationRoutes(app *fiber.App, log *logger.DiscordLogger) {
	notifications := app.Group("/notifications", middleware.Authenticate, middleware.RequirePermission("notifications"))
	notifications.Get("/", controllers.ListNotifications(log))
	notifications.Post("/", validators.RequireBody("notifications"), controllers.CreateNotification(log))
	notifications.Put("/:id", validators.RequireID("Notification"), controllers.MarkNotificationRead(log))
}
