package controllers

import (
	"time"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// ListBadges returns all badge definitions ordered by name
func ListBadges(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var badges []models.Badge
		if err := database.Database.Db.
			Where("is_deleted = ?", false).
			Order("name asc").
			Find(&badges).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch badges")
		}
		return middleware.ListResponse(c, badges, int64(len(badges)))
	}
}

// CreateBadge creates a badge definition
func CreateBadge(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Criteria    string `json:"criteria"`
			Icon        string `json:"icon"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		badge := models.Badge{
			Name:        reqData.Name,
			Description: reqData.Description,
			Criteria:    reqData.Criteria,
			Icon:        reqData.Icon,
		}

		if err := database.Database.Db.Create(&badge).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create badge")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, badge)
	}
}

// ListUserBadges returns awarded badges, optionally filtered by userId,
// newest first
func ListUserBadges(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.UserBadge{}).Where("is_deleted = ?", false)

		if userID := c.Query("userId"); userID != "" {
			db = db.Where("user_id = ?", userID)
		}

		var userBadges []models.UserBadge
		if err := db.Order("created_at desc").Find(&userBadges).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch user badges")
		}
		return middleware.ListResponse(c, userBadges, int64(len(userBadges)))
	}
}

// AwardBadge awards a badge to a user, timestamped at creation
func AwardBadge(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint `json:"userId"`
			BadgeID uint `json:"badgeId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		userBadge := models.UserBadge{
			UserID:   reqData.UserID,
			BadgeID:  reqData.BadgeID,
			EarnedAt: time.Now().UTC(),
		}

		if err := database.Database.Db.Create(&userBadge).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to award badge")
		}

		log.Info("Badge awarded", map[string]interface{}{
			"userId":  userBadge.UserID,
			"badgeId": userBadge.BadgeID,
		})
		return middleware.JsonResponse(c, fiber.StatusCreated, userBadge)
	}
}
