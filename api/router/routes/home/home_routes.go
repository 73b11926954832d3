package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunelens/ytmusic-home-api/api/handlers"
)

func SetupHomeRoutes(router fiber.Router) {

	homeRouter := router.Group("/home")

	homeRouter.Get("/", handlers.GetHomeFeed)
}
