package routes

import (
	"stride/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterFavoriteRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/favorites", controllers.AddFavorite)
	api.Get("/favorites/:user_id", controllers.GetUserFavorites)
	api.Delete("/favorites/:user_id/:sneaker_id", controllers.RemoveFavorite)
}
