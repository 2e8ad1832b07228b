package controllers

import (
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// quizWithQuestions is the GET-by-id response shape: the quiz document with
// its questions inlined, ordered ascending
type quizWithQuestions struct {
	models.Quiz
	Questions []models.QuizQuestion `json:"questions"`
}

// ListQuizzes returns quizzes, optionally filtered by courseId, newest first
func ListQuizzes(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Quiz{}).Where("is_deleted = ?", false)

		if courseID := c.Query("courseId"); courseID != "" {
			db = db.Where("course_id = ?", courseID)
		}

		var quizzes []models.Quiz
		if err := db.Order("created_at desc").Find(&quizzes).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quizzes")
		}
		return middleware.ListResponse(c, quizzes, int64(len(quizzes)))
	}
}

// GetQuiz returns one quiz with its questions inlined
func GetQuiz(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Locals("id").(uint)

		var quiz models.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz")
		}

		var questions []models.QuizQuestion
		if err := database.Database.Db.
			Where("quiz_id = ? AND is_deleted = ?", quizID, false).
			Order("order_index asc").
			Find(&questions).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz questions")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, quizWithQuestions{Quiz: quiz, Questions: questions})
	}
}

// CreateQuiz creates a quiz within a course
func CreateQuiz(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    uint   `json:"courseId"`
			Title       string `json:"title"`
			Description string `json:"description"`
			TimeLimit   int    `json:"timeLimit"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		quiz := models.Quiz{
			CourseID:     reqData.CourseID,
			Title:        reqData.Title,
			Description:  reqData.Description,
			TimeLimit:    reqData.TimeLimit,
			AttemptCount: 0,
		}

		if err := database.Database.Db.Create(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create quiz")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, quiz)
	}
}

// UpdateQuiz updates the provided fields of a quiz
func UpdateQuiz(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Locals("id").(uint)

		var quiz models.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz")
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			TimeLimit   *int   `json:"timeLimit"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Title != "" {
			quiz.Title = reqData.Title
		}
		if reqData.Description != "" {
			quiz.Description = reqData.Description
		}
		if reqData.TimeLimit != nil {
			quiz.TimeLimit = *reqData.TimeLimit
		}

		if err := database.Database.Db.Save(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to update quiz")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, quiz)
	}
}

// DeleteQuiz soft deletes a quiz
func DeleteQuiz(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Locals("id").(uint)

		var quiz models.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz")
		}

		quiz.IsDeleted = true
		if err := database.Database.Db.Save(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to delete quiz")
		}
		return middleware.MessageResponse(c, fiber.StatusOK, "Quiz deleted")
	}
}
