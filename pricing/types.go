// Package pricing turns raw sneaker price samples into chart rows and
// summary statistics. Everything here is a pure function over its inputs.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of a bucket date.
const DateLayout = "2006-01-02"

// Sample is one observed price for a sneaker.
type Sample struct {
	EntityID   uint            `json:"sneaker_id"`
	Price      decimal.Decimal `json:"price"`
	ObservedAt time.Time       `json:"timestamp"`
}

// Entity is the sneaker metadata needed to label a series and compute its stats.
type Entity struct {
	ID           uint
	DisplayName  string
	VariantLabel string
	SKU          string
	RetailPrice  decimal.Decimal
	ReleaseDate  *string
	SizeOptions  *string
	Rating       *int
}

// Label is the series label shown in the chart legend.
func (e Entity) Label() string {
	return e.DisplayName + " - " + e.VariantLabel
}
