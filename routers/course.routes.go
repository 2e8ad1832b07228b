package routers

import (
	controllers "edtech/controllers/course"
	"edtech/logger"
	"edtech/middleware"
	"edtech/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers course, lesson and enrollment routes
func SetupCourseRoutes(app *fiber.App, log *logger.DiscordLogger) {
	courses := app.Group("/courses", middleware.Authenticate, middleware.RequirePermission("courses"))
	courses.Get("/", controllers.ListCourses(log))
	courses.Get("/:id", validators.RequireID("Course"), controllers.GetCourse(log))
	courses.Post("/", validators.RequireBody("courses"), controllers.CreateCourse(log))
	courses.Put("/:id", validators.RequireID("Course"), controllers.UpdateCourse(log))
	courses.Delete("/:id", validators.RequireID("Course"), controllers.DeleteCourse(log))

	lessons := app.Group("/lessons", middleware.Authenticate, middleware.RequirePermission("lessons"))
	lessons.Get("/", controllers.ListLessons(log))
	lessons.Get("/:id", validators.RequireID("Lesson"), controllers.GetLesson(log))
	lessons.Post("/", validators.RequireBody("lessons"), controllers.CreateLesson(log))
	lessons.Put("/:id", validators.RequireID("Lesson"), controllers.UpdateLesson(log))
	lessons.Delete("/:id", validators.RequireID("Lesson"), controllers.DeleteLesson(log))

	enroll := app.Group("/enroll", middleware.Authenticate, middleware.RequirePermission("enroll"))
	enroll.Get("/", controllers.ListEnrollments(log))
	enroll.Post("/", validators.RequireBody("enroll"), controllers.Enroll(log))
	enroll.Delete("/", validators.RequireBody("enroll"), controllers.Unenroll(log))
}
