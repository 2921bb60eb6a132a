package models

import "time"

// Favorite links a user to a sneaker they follow.
type Favorite struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	SneakerID uint      `gorm:"primaryKey;autoIncrement:false" json:"sneaker_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sneaker   Sneaker   `gorm:"foreignKey:SneakerID;references:SneakerID;constraint:OnDelete:CASCADE" json:"-"`
}
