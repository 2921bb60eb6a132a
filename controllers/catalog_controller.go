package controllers

import (
	"stride/database"
	"stride/models"

	"github.com/gofiber/fiber/v2"
)

func GetBrands(c *fiber.Ctx) error {
	if database.DB == nil {
		return dbUnavailable(c)
	}

	brands := []models.Brand{}
	if err := database.DB.Order("name ASC").Find(&brands).Error; err != nil {
		log.WithError(err).Error("failed to list brands")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve brands"})
	}
	return c.JSON(brands)
}

func GetRetailers(c *fiber.Ctx) error {
	if database.DB == nil {
		return dbUnavailable(c)
	}

	retailers := []models.Retailer{}
	if err := database.DB.Order("name ASC").Find(&retailers).Error; err != nil {
		log.WithError(err).Error("failed to list retailers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve retailers"})
	}
	return c.JSON(retailers)
}
