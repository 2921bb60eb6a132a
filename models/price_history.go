package models

import (
	"time"

	"stride/pricing"

	"github.com/shopspring/decimal"
)

// PriceHistory is one recorded price of a sneaker. Rows are removed with their sneaker.
type PriceHistory struct {
	PriceID   uint            `gorm:"primaryKey;column:price_id" json:"price_id"`
	SneakerID uint            `gorm:"not null;index:idx_price_history_sneaker_time,priority:1" json:"sneaker_id"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Timestamp time.Time       `gorm:"not null;index:idx_price_history_sneaker_time,priority:2" json:"timestamp"`
	Sneaker   Sneaker         `gorm:"foreignKey:SneakerID;references:SneakerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PriceHistory) TableName() string {
	return "price_history"
}

func (p PriceHistory) Sample() pricing.Sample {
	return pricing.Sample{EntityID: p.SneakerID, Price: p.Price, ObservedAt: p.Timestamp}
}
