package controllers

import (
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// ListProgress returns progress records, optionally filtered by userId and
// courseId
func ListProgress(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.UserProgress{}).Where("is_deleted = ?", false)

		if userID := c.Query("userId"); userID != "" {
			db = db.Where("user_id = ?", userID)
		}
		if courseID := c.Query("courseId"); courseID != "" {
			db = db.Where("course_id = ?", courseID)
		}

		var progress []models.UserProgress
		if err := db.Find(&progress).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch progress")
		}
		return middleware.ListResponse(c, progress, int64(len(progress)))
	}
}

// UpsertProgress records a lesson as reached. At most one record exists per
// (user, course, lesson) triple: a second submission updates the existing
// record instead of duplicating it.
func UpsertProgress(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"userId"`
			CourseID uint `json:"courseId"`
			LessonID uint `json:"lessonId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		var existing models.UserProgress
		err := database.Database.Db.
			Where("user_id = ? AND course_id = ? AND lesson_id = ? AND is_deleted = ?",
				reqData.UserID, reqData.CourseID, reqData.LessonID, false).
			First(&existing).Error

		if err == nil {
			if err := database.Database.Db.Save(&existing).Error; err != nil {
				return middleware.HandleError(c, log, err, "Failed to update progress")
			}
			return middleware.JsonResponse(c, fiber.StatusOK, existing)
		}

		progress := models.UserProgress{
			UserID:   reqData.UserID,
			CourseID: reqData.CourseID,
			LessonID: reqData.LessonID,
		}
		if err := database.Database.Db.Create(&progress).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create progress")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, progress)
	}
}
