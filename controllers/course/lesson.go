package controllers

import (
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// ListLessons returns lessons, optionally filtered by courseId, ordered
// ascending within the course
func ListLessons(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Lesson{}).Where("is_deleted = ?", false)

		if courseID := c.Query("courseId"); courseID != "" {
			db = db.Where("course_id = ?", courseID)
		}

		var lessons []models.Lesson
		if err := db.Order("order_index asc").Find(&lessons).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch lessons")
		}
		return middleware.ListResponse(c, lessons, int64(len(lessons)))
	}
}

// GetLesson returns a single lesson
func GetLesson(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Locals("id").(uint)

		var lesson models.Lesson
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch lesson")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, lesson)
	}
}

// CreateLesson creates a lesson within a course
func CreateLesson(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint   `json:"courseId"`
			Title    string `json:"title"`
			Content  string `json:"content"`
			Order    int    `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		lesson := models.Lesson{
			CourseID:        reqData.CourseID,
			Title:           reqData.Title,
			Content:         reqData.Content,
			OrderIndex:      reqData.Order,
			CompletionCount: 0,
		}

		if err := database.Database.Db.Create(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create lesson")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, lesson)
	}
}

// UpdateLesson updates the provided fields of a lesson
func UpdateLesson(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Locals("id").(uint)

		var lesson models.Lesson
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch lesson")
		}

		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			Order   *int   `json:"order"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Title != "" {
			lesson.Title = reqData.Title
		}
		if reqData.Content != "" {
			lesson.Content = reqData.Content
		}
		if reqData.Order != nil {
			lesson.OrderIndex = *reqData.Order
		}

		if err := database.Database.Db.Save(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to update lesson")
		}
		return middleware.JsonResponse(c, fiber.StatusOK, lesson)
	}
}

// DeleteLesson soft deletes a lesson
func DeleteLesson(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID := c.Locals("id").(uint)

		var lesson models.Lesson
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch lesson")
		}

		lesson.IsDeleted = true
		if err := database.Database.Db.Save(&lesson).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to delete lesson")
		}
		return middleware.MessageResponse(c, fiber.StatusOK, "Lesson deleted")
	}
}
