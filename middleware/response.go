package middleware

import (
	"edtech/config"
	"edtech/logger"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard success envelope
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ListResponse writes a success envelope with a total count
func ListResponse(c *fiber.Ctx, data interface{}, total int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

// MessageResponse writes a success envelope carrying only a message
func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// ErrorResponse writes the standard failure envelope
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// HandleError funnels an unexpected error to HTTP 500. The underlying error
// detail is included only in development mode; the event always goes to the
// Discord sink.
func HandleError(c *fiber.Ctx, log *logger.DiscordLogger, err error, message string) error {
	log.Error("EdTech API Error: "+message, err, map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
	})

	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if config.AppConfig != nil && config.AppConfig.IsDevelopment() && err != nil {
		body["details"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
