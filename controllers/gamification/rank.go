package controllers

import (
	"time"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// ListRanks returns leaderboard entries, optionally filtered by courseId,
// best rank first
func ListRanks(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Rank{}).Where("is_deleted = ?", false)

		if courseID := c.Query("courseId"); courseID != "" {
			db = db.Where("course_id = ?", courseID)
		}

		var ranks []models.Rank
		if err := db.Order("rank asc").Find(&ranks).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch ranks")
		}
		return middleware.ListResponse(c, ranks, int64(len(ranks)))
	}
}

// CreateRank records a leaderboard entry, timestamped at creation
func CreateRank(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"userId"`
			CourseID uint `json:"courseId"`
			Score    int  `json:"score"`
			Rank     int  `json:"rank"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		rank := models.Rank{
			UserID:     reqData.UserID,
			CourseID:   reqData.CourseID,
			Score:      reqData.Score,
			Rank:       reqData.Rank,
			AchievedAt: time.Now().UTC(),
		}

		if err := database.Database.Db.Create(&rank).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create rank")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, rank)
	}
}
