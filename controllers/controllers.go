package controllers

import (
	"strconv"
	"time"

	"stride/database"
	"stride/logger"
	"stride/models"
	"stride/pricing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

var log = logger.GetLogger().WithComponent("controllers")

var settings = struct {
	dataDir     string
	chartWindow time.Duration
}{
	dataDir:     "data",
	chartWindow: 90 * 24 * time.Hour,
}

// Configure sets the seed data directory and the default chart window.
func Configure(dataDir string, chartWindow time.Duration) {
	if dataDir != "" {
		settings.dataDir = dataDir
	}
	if chartWindow > 0 {
		settings.chartWindow = chartWindow
	}
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func dbUnavailable(c *fiber.Ctx) error {
	log.Error("database connection is nil")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database connection error"})
}

// findSneakers loads sneakers and returns them in the order of ids. Unknown ids are skipped.
func findSneakers(ids []uint) ([]models.Sneaker, error) {
	var found []models.Sneaker
	if err := database.DB.Where("sneaker_id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Sneaker, len(found))
	for _, s := range found {
		byID[s.SneakerID] = s
	}
	ordered := make([]models.Sneaker, 0, len(found))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, s)
			seen[id] = true
		}
	}
	return ordered, nil
}

// findPriceHistory returns price rows for ids within [start, end], oldest first.
// Nil bounds are open.
func findPriceHistory(ids []uint, start, end *time.Time) ([]models.PriceHistory, error) {
	timestamp := clause.Column{Name: "timestamp"}
	query := database.DB.Where("sneaker_id IN ?", ids)
	if start != nil {
		query = query.Where(clause.Gte{Column: timestamp, Value: start.UTC()})
	}
	if end != nil {
		query = query.Where(clause.Lte{Column: timestamp, Value: end.UTC()})
	}

	var history []models.PriceHistory
	err := query.
		Order(clause.OrderByColumn{Column: timestamp}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "price_id"}}).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func toSamples(history []models.PriceHistory) []pricing.Sample {
	samples := make([]pricing.Sample, 0, len(history))
	for _, h := range history {
		samples = append(samples, h.Sample())
	}
	return samples
}

func toEntities(sneakers []models.Sneaker) []pricing.Entity {
	entities := make([]pricing.Entity, 0, len(sneakers))
	for _, s := range sneakers {
		entities = append(entities, s.Entity())
	}
	return entities
}
