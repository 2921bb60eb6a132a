package controllers

import (
	"errors"

	"stride/database"
	"stride/seed"

	"github.com/gofiber/fiber/v2"
)

// InitData reloads the demo dataset from the CSV files in the data directory.
func InitData(c *fiber.Ctx) error {
	if database.DB == nil {
		return dbUnavailable(c)
	}

	summary, err := seed.FromCSV(database.DB, settings.dataDir, nil)
	if err != nil {
		if errors.Is(err, seed.ErrMissingFile) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CSV file not found: " + err.Error()})
		}
		log.WithError(err).Error("failed to seed database")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize data: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Database initialized successfully from CSV files",
		"loaded":  summary,
	})
}
