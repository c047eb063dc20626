package models

import "time"

// ScheduleDay holds the opening hours for one day of the week.
// All seven weekdays (0=Sunday .. 6=Saturday) must have a row;
// a missing row is a configuration fault, not a closed day.
type ScheduleDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Weekday   int       `gorm:"not null;uniqueIndex" json:"weekday"`
	OpenTime  string    `gorm:"type:varchar(5)" json:"open_time"`
	CloseTime string    `gorm:"type:varchar(5)" json:"close_time"`
	IsClosed  bool      `gorm:"default:false" json:"is_closed"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
