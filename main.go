package main

import (
	"log"

	"edtech/config"
	"edtech/database"
	appLogger "edtech/logger"
	"edtech/routers"
	"edtech/utils"

	"github.com/gofiber/fiber/v2"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	events := appLogger.New(config.AppConfig.DiscordWebhookURL, config.AppConfig.Environment)

	app := fiber.New()

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routers.Setup(app, events)

	utils.StartMetricsReporter(events)

	events.Info("EdTech API starting", map[string]interface{}{
		"port":        config.AppConfig.Port,
		"environment": config.AppConfig.Environment,
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
