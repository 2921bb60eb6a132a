package routes

import (
	"stride/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterCatalogRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/brands", controllers.GetBrands)
	api.Get("/retailers", controllers.GetRetailers)
}
