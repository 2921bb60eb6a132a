package controllers

import (
	"errors"
	"time"

	"stride/database"
	"stride/logger"
	"stride/models"
	"stride/pricing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPriceHistory returns raw price points for the requested sneakers, oldest first.
func GetPriceHistory(c *fiber.Ctx) error {
	var req models.PriceHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if len(req.SneakerIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No sneaker IDs provided"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	history, err := findPriceHistory(req.SneakerIDs, req.StartDate, req.EndDate)
	if err != nil {
		log.WithError(err).Error("failed to query price history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve price history"})
	}

	points := make([]models.PricePoint, 0, len(history))
	for _, h := range history {
		points = append(points, models.PricePoint{Timestamp: h.Timestamp, Price: h.Price, SneakerID: h.SneakerID})
	}
	return c.JSON(points)
}

// chartWindow resolves the requested range, defaulting to the configured
// window ending now.
func chartWindow(req models.PriceHistoryRequest, now time.Time) (time.Time, time.Time) {
	end := now.UTC()
	if req.EndDate != nil {
		end = req.EndDate.UTC()
	}
	start := end.Add(-settings.chartWindow)
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	return start, end
}

func computeStats(entities []pricing.Entity, samples []pricing.Sample) []pricing.SeriesStats {
	stats := make([]pricing.SeriesStats, 0, len(entities))
	for _, e := range entities {
		s := pricing.ComputeStats(e, samples)
		if !s.PriceChangePercent.Valid {
			log.WithError(pricing.ErrZeroRetailPrice).
				WithFields(logger.Fields{"sneaker_id": e.ID}).
				Warn("price change percent unavailable")
		}
		stats = append(stats, s)
	}
	return stats
}

// GetPriceChart builds chart rows, series and stats for the requested sneakers.
func GetPriceChart(c *fiber.Ctx) error {
	var req models.PriceHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if len(req.SneakerIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No sneaker IDs provided"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	start, end := chartWindow(req, time.Now())
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date is before start_date"})
	}

	sneakers, err := findSneakers(req.SneakerIDs)
	if err != nil {
		log.WithError(err).Error("failed to load sneakers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve sneakers"})
	}
	history, err := findPriceHistory(req.SneakerIDs, &start, &end)
	if err != nil {
		log.WithError(err).Error("failed to query price history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve price history"})
	}

	entities := toEntities(sneakers)
	samples := pricing.SortSamples(toSamples(history))

	return c.JSON(models.ChartResponse{
		StartDate: start,
		EndDate:   end,
		Series:    pricing.BuildSeries(entities),
		Rows:      pricing.BuildChartRows(samples, entities),
		Stats:     computeStats(entities, samples),
	})
}

// GetSneakerStats returns the stats of one sneaker over the default window.
func GetSneakerStats(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}
	if database.DB == nil {
		return dbUnavailable(c)
	}

	var sneaker models.Sneaker
	if err := database.DB.First(&sneaker, "sneaker_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sneaker not found"})
		}
		log.WithError(err).Error("failed to load sneaker")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve sneaker"})
	}

	start, end := chartWindow(models.PriceHistoryRequest{}, time.Now())
	history, err := findPriceHistory([]uint{id}, &start, &end)
	if err != nil {
		log.WithError(err).Error("failed to query price history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve price history"})
	}

	stats := computeStats([]pricing.Entity{sneaker.Entity()}, pricing.SortSamples(toSamples(history)))
	return c.JSON(stats[0])
}
