package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunelens/ytmusic-home-api/api/handlers"
)

func SetupAuthRoutes(router fiber.Router) {

	authRouter := router.Group("/auth")

	authRouter.Get("/youtube", handlers.InitiateOAuthFlow)

	authRouter.Get("/youtube_callback", handlers.HandleOAuthCallback)
}
