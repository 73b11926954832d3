package router

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/tunelens/ytmusic-home-api/api/router/routes"
)

func SetupServer() {
	app := fiber.New()

	// server logging
	app.Use(logger.New())

	routes.SetupRoutes(app)

	err := app.Listen(fmt.Sprintf(":%s", os.Getenv("PORT")))

	if err != nil {
		log.Fatal(err)
	}
}
