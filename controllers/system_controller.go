package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	apiName    = "Stride API"
	apiVersion = "1.0.0"
)

func GetAPIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        apiName,
		"version":     apiVersion,
		"description": "Sneaker Price Visualization Platform",
		"endpoints": fiber.Map{
			"GET /api/sneakers":              "Get all sneakers with brand information",
			"POST /api/sneakers/prices":      "Get price history for selected sneakers",
			"POST /api/sneakers/chart":       "Get chart rows and stats for selected sneakers",
			"GET /api/sneakers/:id/stats":    "Get price statistics for one sneaker",
			"GET /api/sneakers/:id/complete": "Get a sneaker with brand, retailer, prices and favorites",
			"POST /api/init-data":            "Initialize database with sample data",
		},
	})
}

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "timestamp": time.Now().UTC()})
}
