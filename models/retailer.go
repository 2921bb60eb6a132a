package models

// Retailer is a store selling one or more brands.
type Retailer struct {
	RetailerID uint    `gorm:"primaryKey;column:retailer_id" json:"retailer_id"`
	Name       string  `gorm:"size:50;not null" json:"name"`
	Location   *string `gorm:"size:50" json:"location"`
	Website    *string `gorm:"size:100" json:"website"`
}
