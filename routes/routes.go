package routes

import "github.com/gofiber/fiber/v2"

// Setup registers every route of the API.
func Setup(app *fiber.App, adminSecret string) {
	RegisterSystemRoutes(app)
	RegisterSneakerRoutes(app)
	RegisterCatalogRoutes(app)
	RegisterFavoriteRoutes(app)
	RegisterSeedRoutes(app, adminSecret)
}
