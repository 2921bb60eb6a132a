package controllers

import (
	"errors"

	"stride/database"
	"stride/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddFavorite links a user to a sneaker. Adding an existing favorite is not an error.
func AddFavorite(c *fiber.Ctx) error {
	var req models.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if req.UserID == 0 || req.SneakerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id and sneaker_id are required"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	var existing models.Favorite
	err := database.DB.Where("user_id = ? AND sneaker_id = ?", req.UserID, req.SneakerID).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"status": "already_exists", "message": "Already in favorites"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Error("failed to look up favorite")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add favorite"})
	}

	var user models.User
	if err := database.DB.First(&user, "user_id = ?", req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	var sneaker models.Sneaker
	if err := database.DB.First(&sneaker, "sneaker_id = ?", req.SneakerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sneaker not found"})
	}

	favorite := models.Favorite{UserID: req.UserID, SneakerID: req.SneakerID}
	if err := database.DB.Create(&favorite).Error; err != nil {
		log.WithError(err).Error("failed to create favorite")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add favorite"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "message": "Added to favorites"})
}

func RemoveFavorite(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	sneakerID, err := paramID(c, "sneaker_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	result := database.DB.Where("user_id = ? AND sneaker_id = ?", userID, sneakerID).Delete(&models.Favorite{})
	if result.Error != nil {
		log.WithError(result.Error).Error("failed to delete favorite")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove favorite"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Favorite not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Removed from favorites"})
}

func GetUserFavorites(c *fiber.Ctx) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	sneakerIDs := []uint{}
	if err := database.DB.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("sneaker_id ASC").
		Pluck("sneaker_id", &sneakerIDs).Error; err != nil {
		log.WithError(err).Error("failed to list favorites")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve favorites"})
	}

	return c.JSON(fiber.Map{"user_id": userID, "favorited_sneaker_ids": sneakerIDs})
}
