package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type enrollRequest struct {
	UserID   uint `json:"userId"`
	CourseID uint `json:"courseId"`
}

// Enroll enrolls a user in a course: membership on the course team, an
// enrollment counter bump, a transaction record, and a welcome
// notification. The side effects are sequential and non-transactional; the
// duplicate-membership guard is the only idempotency protection.
func Enroll(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(enrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
		}

		teamID := models.CourseTeamID(course.ID)

		var existing models.Membership
		if err := database.Database.Db.Where("team_id = ? AND user_id = ? AND is_deleted = ?", teamID, reqData.UserID, false).First(&existing).Error; err == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User already enrolled in this course!")
		}

		membership := models.Membership{
			TeamID: teamID,
			UserID: reqData.UserID,
			Role:   models.RoleStudent,
		}
		if err := database.Database.Db.Create(&membership).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to enroll in course")
		}

		// Read-then-write counter bump, no rollback of the membership if it
		// fails.
		if err := database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).
			Update("enrollment_count", course.EnrollmentCount+1).Error; err != nil {
			log.Warning("Failed to update enrollment count", map[string]interface{}{
				"courseId": course.ID,
				"error":    err.Error(),
			})
		}

		transaction := models.Transaction{
			UserID:      reqData.UserID,
			Type:        "enrollment",
			Amount:      course.Price,
			Description: "Enrollment in " + course.Title,
			Status:      "completed",
			Reference:   uuid.NewString(),
		}
		if err := database.Database.Db.Create(&transaction).Error; err != nil {
			log.Warning("Failed to record enrollment transaction", map[string]interface{}{
				"courseId": course.ID,
				"userId":   reqData.UserID,
				"error":    err.Error(),
			})
		}

		notification := models.Notification{
			UserID:  reqData.UserID,
			Title:   "Enrollment confirmed",
			Message: fmt.Sprintf("You are now enrolled in %s. Happy learning!", course.Title),
			Type:    "enrollment",
		}
		if err := database.Database.Db.Create(&notification).Error; err != nil {
			log.Warning("Failed to create enrollment notification", map[string]interface{}{
				"userId": reqData.UserID,
				"error":  err.Error(),
			})
		}

		log.Success("User enrolled in course", map[string]interface{}{
			"userId":   reqData.UserID,
			"courseId": course.ID,
			"amount":   course.Price,
		})
		return middleware.JsonResponse(c, fiber.StatusCreated, membership)
	}
}

// ListEnrollments resolves a user's course memberships to course documents.
// Memberships whose course cannot be resolved are dropped with a warning
// rather than failing the whole request.
func ListEnrollments(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			if id, ok := c.Locals("userId").(uint); ok {
				userID = strconv.FormatUint(uint64(id), 10)
			}
		}
		if userID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields: userId")
		}

		var memberships []models.Membership
		if err := database.Database.Db.
			Where("user_id = ? AND is_deleted = ?", userID, false).
			Find(&memberships).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch enrollments")
		}

		courses := make([]models.Course, 0, len(memberships))
		for _, m := range memberships {
			if !strings.HasPrefix(m.TeamID, models.CourseTeamPrefix) {
				continue
			}
			courseID, err := strconv.ParseUint(strings.TrimPrefix(m.TeamID, models.CourseTeamPrefix), 10, 64)
			if err != nil {
				log.Warning("Malformed course team id on membership", map[string]interface{}{
					"teamId": m.TeamID,
					"userId": m.UserID,
				})
				continue
			}

			var course models.Course
			if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
				log.Warning("Failed to resolve enrolled course", map[string]interface{}{
					"teamId": m.TeamID,
					"userId": m.UserID,
					"error":  err.Error(),
				})
				continue
			}
			courses = append(courses, course)
		}

		return middleware.ListResponse(c, courses, int64(len(courses)))
	}
}

// Unenroll removes a user's course membership and decrements the course's
// enrollment count, floored at zero
func Unenroll(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(enrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		teamID := models.CourseTeamID(reqData.CourseID)

		var membership models.Membership
		if err := database.Database.Db.Where("team_id = ? AND user_id = ? AND is_deleted = ?", teamID, reqData.UserID, false).First(&membership).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found!")
		}

		membership.IsDeleted = true
		if err := database.Database.Db.Save(&membership).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to unenroll from course")
		}

		var course models.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err == nil {
			count := course.EnrollmentCount - 1
			if count < 0 {
				count = 0
			}
			if err := database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).
				Update("enrollment_count", count).Error; err != nil {
				log.Warning("Failed to update enrollment count", map[string]interface{}{
					"courseId": course.ID,
					"error":    err.Error(),
				})
			}
		}

		log.Info("User unenrolled from course", map[string]interface{}{
			"userId":   reqData.UserID,
			"courseId": reqData.CourseID,
		})
		return middleware.MessageResponse(c, fiber.StatusOK, "Unenrolled from course")
	}
}
