package controllers

import (
	"time"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns notifications, optionally filtered by userId,
// newest first
func ListNotifications(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Notification{}).Where("is_deleted = ?", false)

		if userID := c.Query("userId"); userID != "" {
			db = db.Where("user_id = ?", userID)
		}

		var notifications []models.Notification
		if err := db.Order("created_at desc").Find(&notifications).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch notifications")
		}
		return middleware.ListResponse(c, notifications, int64(len(notifications)))
	}
}

// CreateNotification creates an unread notification for a user
func CreateNotification(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint   `json:"userId"`
			Title   string `json:"title"`
			Message string `json:"message"`
			Type    string `json:"type"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		notification := models.Notification{
			UserID:  reqData.UserID,
			Title:   reqData.Title,
			Message: reqData.Message,
			Type:    reqData.Type,
			IsRead:  false,
		}

		if err := database.Database.Db.Create(&notification).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create notification")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, notification)
	}
}

// MarkNotificationRead marks a notification as read. No other field is
// mutable through this path; the request body is ignored.
func MarkNotificationRead(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notificationID := c.Locals("id").(uint)

		var notification models.Notification
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", notificationID, false).First(&notification).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch notification")
		}

		now := time.Now().UTC()
		notification.IsRead = true
		notification.ReadAt = &now

		if err := database.Database.Db.Save(&notification).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to update notification")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, notification)
	}
}
