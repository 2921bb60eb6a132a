package models

// Brand is a sneaker manufacturer. Every brand is sold by exactly one retailer.
type Brand struct {
	BrandID    uint     `gorm:"primaryKey;column:brand_id" json:"brand_id"`
	Name       string   `gorm:"size:50;not null" json:"name"`
	Website    *string  `gorm:"size:100" json:"website"`
	RetailerID uint     `gorm:"not null;index" json:"retailer_id"`
	Retailer   Retailer `gorm:"foreignKey:RetailerID;references:RetailerID" json:"-"`
}
