package routers

import (
	controllers "edtech/controllers/gamification"
	"edtech/logger"
	"edtech/middleware"
	"edtech/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupGamificationRoutes registers transaction, rank and badge routes
func SetupGamificationRoutes(app *fiber.App, log *logger.DiscordLogger) {
	transactions := app.Group("/transactions", middleware.Authenticate, middleware.RequirePermission("transactions"))
	transactions.Get("/", controllers.ListTransactions(log))
	transactions.Post("/", validators.RequireBody("transactions"), controllers.CreateTransaction(log))

	ranks := app.Group("/ranks", middleware.Authenticate, middleware.RequirePermission("ranks"))
	ranks.Get("/", controllers.ListRanks(log))
	ranks.Post("/", validators.RequireBody("ranks"), controllers.CreateRank(log))

	badges := app.Group("/badges", middleware.Authenticate, middleware.RequirePermission("badges"))
	badges.Get("/", controllers.ListBadges(log))
	badges.Post("/", validators.RequireBody("badges"), controllers.CreateBadge(log))

	userBadges := app.Group("/user-badges", middleware.Authenticate, middleware.RequirePermission("user-badges"))
	userBadges.Get("/", controllers.ListUserBadges(log))
	userBadges.Post("/", validators.RequireBody("user-badges"), controllers.AwardBadge(log))
}
