package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ListAttempts returns quiz attempts, optionally filtered by userId and
// quizId, newest first
func ListAttempts(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.QuizAttempt{}).Where("is_deleted = ?", false)

		if userID := c.Query("userId"); userID != "" {
			db = db.Where("user_id = ?", userID)
		}
		if quizID := c.Query("quizId"); quizID != "" {
			db = db.Where("quiz_id = ?", quizID)
		}

		var attempts []models.QuizAttempt
		if err := db.Order("created_at desc").Find(&attempts).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz attempts")
		}
		return middleware.ListResponse(c, attempts, int64(len(attempts)))
	}
}

// SubmitAttempt grades and records a quiz submission. The pipeline is
// linear: load the quiz, require an enrollment in its course, load the
// ordered questions, match the answer sequence positionally, persist the
// attempt, and best-effort bump the quiz's attempt counter.
func SubmitAttempt(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint     `json:"userId"`
			QuizID  uint     `json:"quizId"`
			Answers []string `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		var quiz models.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.QuizID, false).First(&quiz).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz")
		}

		// The submitting user must hold a membership in the quiz's course
		teamID := models.CourseTeamID(quiz.CourseID)
		var membership models.Membership
		if err := database.Database.Db.Where("team_id = ? AND user_id = ? AND is_deleted = ?", teamID, reqData.UserID, false).First(&membership).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "User must be enrolled in the course to attempt this quiz!")
		}

		var questions []models.QuizQuestion
		if err := database.Database.Db.
			Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
			Order("order_index asc").
			Find(&questions).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch quiz questions")
		}
		if len(questions) == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Quiz has no questions!")
		}

		if len(reqData.Answers) != len(questions) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest,
				fmt.Sprintf("Answer count mismatch: expected %d answers, received %d", len(questions), len(reqData.Answers)))
		}

		result := ScoreAnswers(questions, reqData.Answers)

		answersJSON, err := json.Marshal(reqData.Answers)
		if err != nil {
			return middleware.HandleError(c, log, err, "Failed to serialize answers")
		}
		breakdownJSON, err := json.Marshal(result.Breakdown)
		if err != nil {
			return middleware.HandleError(c, log, err, "Failed to serialize answer breakdown")
		}

		attempt := models.QuizAttempt{
			UserID:         reqData.UserID,
			QuizID:         quiz.ID,
			Answers:        datatypes.JSON(answersJSON),
			Breakdown:      datatypes.JSON(breakdownJSON),
			Score:          result.Score,
			TotalQuestions: result.TotalQuestions,
			Passed:         result.Passed,
			AttemptedAt:    time.Now().UTC(),
		}
		if err := database.Database.Db.Create(&attempt).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create quiz attempt")
		}

		log.Success("Quiz attempt created", map[string]interface{}{
			"attemptId": attempt.ID,
			"userId":    attempt.UserID,
			"quizId":    attempt.QuizID,
			"score":     attempt.Score,
			"passed":    attempt.Passed,
		})

		// Best-effort counter bump; the attempt stands even if this fails
		if err := database.Database.Db.Model(&models.Quiz{}).Where("id = ?", quiz.ID).
			Update("attempt_count", quiz.AttemptCount+1).Error; err != nil {
			log.Warning("Failed to update quiz attempt count", map[string]interface{}{
				"quizId": quiz.ID,
				"error":  err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":    true,
			"data":       attempt,
			"percentage": result.Percentage(),
		})
	}
}
