package models

import "time"

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order     Order            `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID    uint             `gorm:"not null" json:"item_id"`
	Item      Item             `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item"`
	SizeID    uint             `gorm:"not null" json:"size_id"`
	SizeLabel string           `gorm:"type:varchar(50)" json:"size_label"`
	Quantity  int              `gorm:"not null" json:"quantity"`
	UnitPrice float64          `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Notes     string           `gorm:"type:text" json:"notes"`
	AddOns    []OrderItemAddOn `gorm:"foreignKey:OrderItemID" json:"add_ons"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`
}

// OrderItemAddOn snapshots an add-on price at order time.
type OrderItemAddOn struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderItemID uint      `gorm:"not null" json:"order_item_id"`
	OrderItem   OrderItem `gorm:"foreignKey:OrderItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AddOnID     uint      `gorm:"not null" json:"add_on_id"`
	Name        string    `gorm:"type:varchar(100)" json:"name"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
