package models

import "time"

// Setting is the restaurant-wide configuration, a single row.
type Setting struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"type:varchar(255);not null" json:"name"`
	DefaultDeliveryFee  float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"default_delivery_fee"`
	DeliveryTimeMinutes int       `gorm:"not null;default:45" json:"delivery_time_minutes"`
	TaxPercent          float64   `gorm:"type:decimal(5,2);not null;default:0.00" json:"tax_percent"`
	Timezone            string    `gorm:"type:varchar(50);not null;default:'UTC'" json:"timezone"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}
