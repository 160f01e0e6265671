package main

import (
	"log"

	"hall_manager/config"
	"hall_manager/database"
	"hall_manager/helper"
	"hall_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartQuotationExpiryScheduler()
	defer helper.StopQuotationExpiryScheduler()

	router.SetupRoutes(app)

	port := config.ConfigOr("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
