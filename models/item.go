package models

import "time"

type Item struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CategoryID  uint       `gorm:"not null;index" json:"category_id"`
	Category    Category   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string     `gorm:"type:varchar(255); not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	IsVeg       bool       `gorm:"default:false" json:"is_veg"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	Sizes       []ItemSize `gorm:"foreignKey:ItemID" json:"sizes"`
	AddOns      []AddOn    `gorm:"foreignKey:ItemID" json:"add_ons"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
