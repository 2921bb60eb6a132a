package routes

import (
	"stride/controllers"
	"stride/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterSeedRoutes exposes the dataset reload, guarded by the admin token when adminSecret is set.
func RegisterSeedRoutes(app *fiber.App, adminSecret string) {
	api := app.Group("/api")
	api.Post("/init-data", middleware.JWTAdminMiddleware(adminSecret), controllers.InitData)
}
