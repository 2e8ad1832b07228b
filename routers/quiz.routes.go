package routers

import (
	controllers "edtech/controllers/quiz"
	"edtech/logger"
	"edtech/middleware"
	"edtech/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes registers quiz, question and attempt routes
func SetupQuizRoutes(app *fiber.App, log *logger.DiscordLogger) {
	quizzes := app.Group("/quizzes", middleware.Authenticate, middleware.RequirePermission("quizzes"))
	quizzes.Get("/", controllers.ListQuizzes(log))
	quizzes.Get("/:id", validators.RequireID("Quiz"), controllers.GetQuiz(log))
	quizzes.Post("/", validators.RequireBody("quizzes"), controllers.CreateQuiz(log))
	quizzes.Put("/:id", validators.RequireID("Quiz"), controllers.UpdateQuiz(log))
	quizzes.Delete("/:id", validators.RequireID("Quiz"), controllers.DeleteQuiz(log))

	questions := app.Group("/quiz-questions", middleware.Authenticate, middleware.RequirePermission("quiz-questions"))
	questions.Get("/", controllers.ListQuestions(log))
	questions.Post("/", validators.RequireBody("quiz-questions"), controllers.CreateQuestion(log))
	questions.Put("/:id", validators.RequireID("Question"), controllers.UpdateQuestion(log))
	questions.Delete("/:id", validators.RequireID("Question"), controllers.DeleteQuestion(log))

	attempts := app.Group("/quiz-attempts", middleware.Authenticate, middleware.RequirePermission("quiz-attempts"))
	attempts.Get("/", controllers.ListAttempts(log))
	attempts.Post("/", validators.RequireBody("quiz-attempts"), controllers.SubmitAttempt(log))
}
