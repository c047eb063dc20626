package models

import "time"

// OfferRedemption counts how many times a user redeemed an offer.
// UsedCount only ever increases, through a conditional update that
// enforces the offer's per-user limit at write time.
type OfferRedemption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OfferID   uint      `gorm:"not null;uniqueIndex:idx_offer_user" json:"offer_id"`
	Offer     Offer     `gorm:"foreignKey:OfferID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_offer_user" json:"user_id"`
	UsedCount int       `gorm:"not null;default:0" json:"used_count"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
