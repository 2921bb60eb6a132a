package routes

import (
	"stride/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterSystemRoutes(app *fiber.App) {
	app.Get("/", controllers.GetAPIInfo)
	app.Get("/health", controllers.HealthCheck)
}
