package routes

import (
	"stride/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterSneakerRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/sneakers", controllers.GetSneakers)
	api.Post("/sneakers/prices", controllers.GetPriceHistory)
	api.Post("/sneakers/chart", controllers.GetPriceChart)
	api.Get("/sneakers/:id/stats", controllers.GetSneakerStats)
	api.Get("/sneakers/:id/complete", controllers.GetSneakerComplete)
}
