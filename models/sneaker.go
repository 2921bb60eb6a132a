package models

import (
	"stride/pricing"

	"github.com/shopspring/decimal"
)

type Sneaker struct {
	SneakerID      uint            `gorm:"primaryKey;column:sneaker_id" json:"sneaker_id"`
	Name           string          `gorm:"size:50;not null" json:"name"`
	SKU            string          `gorm:"column:sku;size:20;not null;uniqueIndex" json:"sku"`
	ReleaseDate    *string         `gorm:"size:20" json:"release_date"`
	Colorway       *string         `gorm:"size:50" json:"colorway"`
	AvailableSizes *string         `gorm:"size:50" json:"available_sizes"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Ratings        *int            `gorm:"check:chk_sneakers_ratings,ratings BETWEEN 1 AND 5" json:"ratings"`
	BrandID        uint            `gorm:"not null;index" json:"brand_id"`
	Brand          Brand           `gorm:"foreignKey:BrandID;references:BrandID" json:"-"`
}

// Entity converts the sneaker into the metadata used for charting. The variant
// is the colorway, or the SKU when no colorway is recorded.
func (s Sneaker) Entity() pricing.Entity {
	variant := s.SKU
	if s.Colorway != nil && *s.Colorway != "" {
		variant = *s.Colorway
	}
	return pricing.Entity{
		ID:           s.SneakerID,
		DisplayName:  s.Name,
		VariantLabel: variant,
		SKU:          s.SKU,
		RetailPrice:  s.Price,
		ReleaseDate:  s.ReleaseDate,
		SizeOptions:  s.AvailableSizes,
		Rating:       s.Ratings,
	}
}
