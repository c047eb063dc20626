package models

import "time"

// StoreClosure is the manual open/close override. Rows are append-only;
// the most recent row is authoritative and reopening writes a new row
// with IsClosed=false instead of editing history.
type StoreClosure struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IsClosed  bool      `gorm:"not null" json:"is_closed"`
	Reason    string    `gorm:"type:varchar(255)" json:"reason"`
	ClosedBy  uint      `gorm:"not null" json:"closed_by"`
	Operator  User      `gorm:"foreignKey:ClosedBy;references:ID" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
