package controllers

import (
	"encoding/json"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ListQuestions returns questions, optionally filtered by quizId, ordered
// ascending
func ListQuestions(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.QuizQuestion{}).Where("is_deleted = ?", false)

		if quizID := c.Query("quizId"); quizID != "" {
			db = db.Where("quiz_id = ?", quizID)
		}

		var questions []models.QuizQuestion
		if err := db.Order("order_index asc").Find(&questions).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch questions")
		}
		return middleware.ListResponse(c, questions, int64(len(questions)))
	}
}

// CreateQuestion creates a question within a quiz
func CreateQuestion(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuizID        uint     `json:"quizId"`
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correctAnswer"`
			Order         int      `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		options, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid options!")
		}

		question := models.QuizQuestion{
			QuizID:        reqData.QuizID,
			Question:      reqData.Question,
			Options:       datatypes.JSON(options),
			CorrectAnswer: reqData.CorrectAnswer,
			OrderIndex:    reqData.Order,
		}

		if err := database.Database.Db.Create(&question).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create question")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, question)
	}
}

// UpdateQuestion updates the provided fields of a question
func UpdateQuestion(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID := c.Locals("id").(uint)

		var question models.QuizQuestion
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch question")
		}

		reqData := new(struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correctAnswer"`
			Order         *int     `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Question != "" {
			question.Question = reqData.Question
		}
		if len(reqData.Options) > 0 {
			options, err := json.Marshal(reqData.Options)
			if err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid options!")
			}
			question.Options = datatypes.JSON(options)
		}
		if reqData.CorrectAnswer != "" {
			question.CorrectAnswer = reqData.CorrectAnswer
		}
		if reqData.Order != nil {
			question.OrderIndex = *reqData.Order
		}

		if err := database.Database.Db.Save(&question).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to update question")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, question)
	}
}

// DeleteQuestion soft deletes a question
func DeleteQuestion(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID := c.Locals("id").(uint)

		var question models.QuizQuestion
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch question")
		}

		question.IsDeleted = true
		if err := database.Database.Db.Save(&question).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to delete question")
		}
		return middleware.MessageResponse(c, fiber.StatusOK, "Question deleted")
	}
}
