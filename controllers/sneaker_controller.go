package controllers

import (
	"errors"

	"stride/database"
	"stride/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSneakers lists every sneaker with its brand and retailer, ordered by brand then name.
func GetSneakers(c *fiber.Ctx) error {
	if database.DB == nil {
		return dbUnavailable(c)
	}

	sneakers := []models.SneakerWithBrand{}
	err := database.DB.Table("sneakers").
		Select(`sneakers.sneaker_id, sneakers.name, sneakers.sku, sneakers.release_date,
			sneakers.colorway, sneakers.available_sizes, sneakers.price, sneakers.ratings,
			sneakers.brand_id, brands.name AS brand_name, brands.retailer_id,
			retailers.name AS retailer_name`).
		Joins("JOIN brands ON brands.brand_id = sneakers.brand_id").
		Joins("LEFT JOIN retailers ON retailers.retailer_id = brands.retailer_id").
		Order("brands.name ASC, sneakers.name ASC").
		Scan(&sneakers).Error
	if err != nil {
		log.WithError(err).Error("failed to list sneakers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve sneakers"})
	}

	return c.JSON(sneakers)
}

// GetSneakerComplete returns a sneaker with its brand, retailer, latest prices and favorites.
func GetSneakerComplete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	var sneaker models.Sneaker
	if err := database.DB.Preload("Brand.Retailer").First(&sneaker, "sneaker_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sneaker not found"})
		}
		log.WithError(err).Error("failed to load sneaker")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve sneaker"})
	}

	detail := models.SneakerDetail{
		Sneaker:  sneaker,
		Brand:    sneaker.Brand,
		Retailer: sneaker.Brand.Retailer,
		PriceHistory: models.PriceHistoryBrief{
			Latest: []models.PriceHistory{},
		},
		Favorites: models.FavoritesBrief{
			Users: []models.Favorite{},
		},
	}

	history := database.DB.Model(&models.PriceHistory{}).Where("sneaker_id = ?", id)
	if err := history.Count(&detail.PriceHistory.TotalRecords).Error; err != nil {
		log.WithError(err).Error("failed to count price history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve price history"})
	}
	if err := database.DB.Where("sneaker_id = ?", id).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).Limit(5).
		Find(&detail.PriceHistory.Latest).Error; err != nil {
		log.WithError(err).Error("failed to load price history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve price history"})
	}

	favorites := database.DB.Model(&models.Favorite{}).Where("sneaker_id = ?", id)
	if err := favorites.Count(&detail.Favorites.TotalUsers).Error; err != nil {
		log.WithError(err).Error("failed to count favorites")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve favorites"})
	}
	if err := database.DB.Where("sneaker_id = ?", id).
		Order("created_at ASC").Limit(5).
		Find(&detail.Favorites.Users).Error; err != nil {
		log.WithError(err).Error("failed to load favorites")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve favorites"})
	}

	return c.JSON(detail)
}
