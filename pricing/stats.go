package pricing

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrZeroRetailPrice is reported when a change percent would divide by a zero retail price.
var ErrZeroRetailPrice = errors.New("pricing: retail price is zero")

const (
	UnknownReleaseDate = "Unknown"
	UnknownSizeOptions = "N/A"
)

var hundred = decimal.NewFromInt(100)

// SeriesStats summarises the price history of one sneaker.
// PriceChangePercent is invalid (null in JSON) when it cannot be computed.
type SeriesStats struct {
	EntityID           uint                `json:"sneaker_id"`
	Name               string              `json:"name"`
	SKU                string              `json:"sku"`
	CurrentPrice       decimal.Decimal     `json:"current_price"`
	RetailPrice        decimal.Decimal     `json:"retail_price"`
	PriceChange        decimal.Decimal     `json:"price_change"`
	PriceChangePercent decimal.NullDecimal `json:"price_change_percent"`
	MinPrice           decimal.Decimal     `json:"min_price"`
	MaxPrice           decimal.Decimal     `json:"max_price"`
	AvgPrice           decimal.Decimal     `json:"avg_price"`
	ReleaseDate        string              `json:"release_date"`
	SizeOptions        string              `json:"size_options"`
	Rating             int                 `json:"rating"`
	SampleCount        int                 `json:"sample_count"`
}

// PercentChange returns (current-retail)/retail*100.
func PercentChange(current, retail decimal.Decimal) (decimal.Decimal, error) {
	if retail.IsZero() {
		return decimal.Zero, ErrZeroRetailPrice
	}
	return current.Sub(retail).Div(retail).Mul(hundred), nil
}

// ComputeStats derives stats for entity from the samples that belong to it.
// Samples are expected in ascending time order: the current price is the last
// matching sample as given, no sorting happens here.
func ComputeStats(entity Entity, samples []Sample) SeriesStats {
	stats := SeriesStats{
		EntityID:    entity.ID,
		Name:        entity.DisplayName,
		SKU:         entity.SKU,
		RetailPrice: entity.RetailPrice,
		ReleaseDate: UnknownReleaseDate,
		SizeOptions: UnknownSizeOptions,
	}
	if entity.ReleaseDate != nil {
		stats.ReleaseDate = *entity.ReleaseDate
	}
	if entity.SizeOptions != nil {
		stats.SizeOptions = *entity.SizeOptions
	}
	if entity.Rating != nil {
		stats.Rating = *entity.Rating
	}

	var (
		count     int
		sum       decimal.Decimal
		low, high decimal.Decimal
		current   decimal.Decimal
	)
	for _, s := range samples {
		if s.EntityID != entity.ID {
			continue
		}
		if count == 0 || s.Price.LessThan(low) {
			low = s.Price
		}
		if count == 0 || s.Price.GreaterThan(high) {
			high = s.Price
		}
		sum = sum.Add(s.Price)
		current = s.Price
		count++
	}

	if count == 0 {
		stats.CurrentPrice = entity.RetailPrice
		stats.MinPrice = entity.RetailPrice
		stats.MaxPrice = entity.RetailPrice
		stats.AvgPrice = entity.RetailPrice
		stats.PriceChange = decimal.Zero
		stats.PriceChangePercent = decimal.NewNullDecimal(decimal.Zero)
		return stats
	}

	stats.SampleCount = count
	stats.CurrentPrice = current
	stats.MinPrice = low
	stats.MaxPrice = high
	stats.AvgPrice = sum.Div(decimal.NewFromInt(int64(count)))
	stats.PriceChange = current.Sub(entity.RetailPrice)
	if pct, err := PercentChange(current, entity.RetailPrice); err == nil {
		stats.PriceChangePercent = decimal.NewNullDecimal(pct)
	}
	return stats
}

// SortSamples returns a copy of samples in ascending time order. Samples with
// equal timestamps keep their relative order.
func SortSamples(samples []Sample) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ObservedAt.Before(sorted[j].ObservedAt)
	})
	return sorted
}
