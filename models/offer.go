package models

import "time"

// Discount kinds
const (
	DiscountPercentage  = "percentage"
	DiscountFlat        = "flat"
	DiscountFreeDeliver = "free_delivery"
)

// Scope kinds. Empty scope means the offer applies to the whole cart.
// ScopeType+ScopeID together encode a single variant, so an offer can
// never be restricted to a category and an item at the same time.
const (
	ScopeNone     = ""
	ScopeCategory = "category"
	ScopeItem     = "item"
)

type Offer struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Code              string     `gorm:"type:varchar(50);unique;not null" json:"code"`
	Description       string     `gorm:"type:text" json:"description"`
	DiscountType      string     `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue     float64    `gorm:"type:decimal(10,2);not null;default:0.00" json:"discount_value"`
	MaxDiscountAmount *float64   `gorm:"type:decimal(10,2)" json:"max_discount_amount,omitempty"`
	MinOrderValue     *float64   `gorm:"type:decimal(10,2)" json:"min_order_value,omitempty"`
	ScopeType         string     `gorm:"type:varchar(20);not null;default:''" json:"scope_type"`
	ScopeID           *uint      `json:"scope_id,omitempty"`
	FirstOrderOnly    bool       `gorm:"default:false" json:"first_order_only"`
	MaxUsesPerUser    *int       `json:"max_uses_per_user,omitempty"`
	ValidFrom         *time.Time `json:"valid_from,omitempty"`
	ValidTo           *time.Time `json:"valid_to,omitempty"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`
}
