package controllers

import (
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// courseWithLessons is the GET-by-id response shape: the course document
// with its lessons inlined, ordered ascending
type courseWithLessons struct {
	models.Course
	Lessons []models.Lesson `json:"lessons"`
}

// ListCourses returns all courses, optionally filtered by category or
// instructor, newest first
func ListCourses(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

		if category := c.Query("category"); category != "" {
			db = db.Where("category = ?", category)
		}
		if instructor := c.Query("instructor"); instructor != "" {
			db = db.Where("instructor_id = ?", instructor)
		}

		var courses []models.Course
		if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch courses")
		}
		return middleware.ListResponse(c, courses, int64(len(courses)))
	}
}

// GetCourse returns one course with its lessons inlined
func GetCourse(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("id").(uint)

		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch course")
		}

		var lessons []models.Lesson
		if err := database.Database.Db.
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Order("order_index asc").
			Find(&lessons).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch course lessons")
		}

		return middleware.JsonResponse(c, fiber.StatusOK, courseWithLessons{Course: course, Lessons: lessons})
	}
}

// CreateCourse creates a course and provisions its collaboration team.
// Team provisioning failure is logged as a warning but does not fail the
// course creation.
func CreateCourse(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string  `json:"title"`
			Description  string  `json:"description"`
			InstructorID string  `json:"instructorId"`
			Category     string  `json:"category"`
			Price        float64 `json:"price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		course := models.Course{
			Title:           reqData.Title,
			Description:     reqData.Description,
			InstructorID:    reqData.InstructorID,
			Category:        reqData.Category,
			Price:           reqData.Price,
			EnrollmentCount: 0,
			IsPublished:     false,
		}

		if err := database.Database.Db.Create(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create course")
		}

		team := models.Team{
			TeamID: models.CourseTeamID(course.ID),
			Name:   course.Title,
			Roles:  datatypes.JSON([]byte(`["admin","student"]`)),
		}
		if err := database.Database.Db.Create(&team).Error; err != nil {
			log.Warning("Failed to provision course team", map[string]interface{}{
				"courseId": course.ID,
				"error":    err.Error(),
			})
		}

		log.Info("Course created", map[string]interface{}{
			"courseId": course.ID,
			"title":    course.Title,
		})
		return middleware.JsonResponse(c, fiber.StatusCreated, course)
	}
}

// UpdateCourse updates the provided fields of a course
func UpdateCourse(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("id").(uint)

		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch course")
		}

		reqData := new(struct {
			Title        string   `json:"title"`
			Description  string   `json:"description"`
			InstructorID string   `json:"instructorId"`
			Category     string   `json:"category"`
			Price        *float64 `json:"price"`
			IsPublished  *bool    `json:"isPublished"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.Title != "" {
			course.Title = reqData.Title
		}
		if reqData.Description != "" {
			course.Description = reqData.Description
		}
		if reqData.InstructorID != "" {
			course.InstructorID = reqData.InstructorID
		}
		if reqData.Category != "" {
			course.Category = reqData.Category
		}
		if reqData.Price != nil {
			course.Price = *reqData.Price
		}
		if reqData.IsPublished != nil {
			course.IsPublished = *reqData.IsPublished
		}

		if err := database.Database.Db.Save(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to update course")
		}

		log.Info("Course updated", map[string]interface{}{"courseId": course.ID})
		return middleware.JsonResponse(c, fiber.StatusOK, course)
	}
}

// DeleteCourse soft deletes a course. Lessons and quizzes are deliberately
// left in place; there is no cascade.
func DeleteCourse(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("id").(uint)

		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch course")
		}

		course.IsDeleted = true
		if err := database.Database.Db.Save(&course).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to delete course")
		}

		log.Info("Course deleted", map[string]interface{}{"courseId": course.ID})
		return middleware.MessageResponse(c, fiber.StatusOK, "Course deleted")
	}
}
