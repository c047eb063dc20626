package models

import "time"

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"-"`
	AddressID      uint        `gorm:"not null" json:"address_id"`
	Address        Address     `gorm:"foreignKey:AddressID" json:"address"`
	Status         string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal       float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	DiscountAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_amount"`
	DeliveryFee    float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	TaxAmount      float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"tax_amount"`
	GrandTotal     float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"grand_total"`
	OfferCode      *string     `gorm:"type:varchar(50)" json:"offer_code,omitempty"`
	OrderItems     []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}
