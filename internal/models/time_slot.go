package models

import "time"

// AvailableTimeSlot is a weekly recurring template. Each row expands into
// one concrete slot per matching date when availability is computed.
type AvailableTimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int `gorm:"index" json:"weekday"` // 0 = Sunday .. 6 = Saturday

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	MaxBookings int  `gorm:"default:1" json:"max_bookings"`
	Active      bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
