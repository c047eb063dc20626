package models

import "time"

// ItemSize is the priced variant of an item (regular/medium/large etc).
// The size price is the base price of an order line.
type ItemSize struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    uint      `gorm:"not null;index" json:"item_id"`
	Item      Item      `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Label     string    `gorm:"type:varchar(50);not null" json:"label"`
	Price     float64   `gorm:"type:decimal(10,2); not null" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
