package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunelens/ytmusic-home-api/api/router/routes/auth"
	"github.com/tunelens/ytmusic-home-api/api/router/routes/home"
)

func SetupRoutes(app *fiber.App) {
	apiRoutes := app.Group("/api")

	auth.SetupAuthRoutes(apiRoutes)
	home.SetupHomeRoutes(apiRoutes)
}
