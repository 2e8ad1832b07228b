package controllers

import (
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListTransactions returns transactions, optionally filtered by userId,
// newest first
func ListTransactions(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.Database.Db.Model(&models.Transaction{}).Where("is_deleted = ?", false)

		if userID := c.Query("userId"); userID != "" {
			db = db.Where("user_id = ?", userID)
		}

		var transactions []models.Transaction
		if err := db.Order("created_at desc").Find(&transactions).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to fetch transactions")
		}
		return middleware.ListResponse(c, transactions, int64(len(transactions)))
	}
}

// CreateTransaction records a transaction; status is fixed to completed at
// creation
func CreateTransaction(log *logger.DiscordLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID      uint    `json:"userId"`
			Type        string  `json:"type"`
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		transaction := models.Transaction{
			UserID:      reqData.UserID,
			Type:        reqData.Type,
			Amount:      reqData.Amount,
			Description: reqData.Description,
			Status:      "completed",
			Reference:   uuid.NewString(),
		}

		if err := database.Database.Db.Create(&transaction).Error; err != nil {
			return middleware.HandleError(c, log, err, "Failed to create transaction")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, transaction)
	}
}
