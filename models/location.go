package models

import "time"

// Location maps a served area to its delivery charge and estimate.
// Orders from an area without a row fall back to the restaurant-wide
// defaults in Setting.
type Location struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Area                string    `gorm:"type:varchar(100);unique;not null" json:"area"`
	DeliveryFee         float64   `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	DeliveryTimeMinutes int       `gorm:"not null" json:"delivery_time_minutes"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}
