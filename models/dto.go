package models

import (
	"time"

	"stride/pricing"

	"github.com/shopspring/decimal"
)

// SneakerWithBrand is a sneaker joined with its brand and the brand's retailer.
type SneakerWithBrand struct {
	SneakerID      uint            `json:"sneaker_id"`
	Name           string          `json:"name"`
	SKU            string          `gorm:"column:sku" json:"sku"`
	ReleaseDate    *string         `json:"release_date"`
	Colorway       *string         `json:"colorway"`
	AvailableSizes *string         `json:"available_sizes"`
	Price          decimal.Decimal `json:"price"`
	Ratings        *int            `json:"ratings"`
	BrandID        uint            `json:"brand_id"`
	BrandName      string          `json:"brand_name"`
	RetailerID     uint            `json:"retailer_id"`
	RetailerName   *string         `json:"retailer_name"`
}

type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Price     decimal.Decimal `json:"price"`
	SneakerID uint            `json:"sneaker_id"`
}

// PriceHistoryRequest selects sneakers and an optional time range.
type PriceHistoryRequest struct {
	SneakerIDs []uint     `json:"sneaker_ids"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

type FavoriteRequest struct {
	UserID    uint `json:"user_id"`
	SneakerID uint `json:"sneaker_id"`
}

// ChartResponse carries everything the price chart page renders.
type ChartResponse struct {
	StartDate time.Time             `json:"start_date"`
	EndDate   time.Time             `json:"end_date"`
	Series    []pricing.Series      `json:"series"`
	Rows      []pricing.ChartRow    `json:"rows"`
	Stats     []pricing.SeriesStats `json:"stats"`
}

// SneakerDetail is the full view of one sneaker with its related records.
type SneakerDetail struct {
	Sneaker      Sneaker           `json:"sneaker"`
	Brand        Brand             `json:"brand"`
	Retailer     Retailer          `json:"retailer"`
	PriceHistory PriceHistoryBrief `json:"price_history"`
	Favorites    FavoritesBrief    `json:"favorites"`
}

type PriceHistoryBrief struct {
	TotalRecords int64          `json:"total_records"`
	Latest       []PriceHistory `json:"latest_prices"`
}

type FavoritesBrief struct {
	TotalUsers int64      `json:"total_users_favorited"`
	Users      []Favorite `json:"favorited_by_users"`
}
