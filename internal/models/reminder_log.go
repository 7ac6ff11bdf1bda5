package models

import "time"

// ReminderLog records every SMS reminder attempt, sent or failed.
type ReminderLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`

	Phone  string `gorm:"size:20" json:"phone"`
	Status string `gorm:"size:20" json:"status"` // sent | failed
	Error  string `gorm:"size:255" json:"error"`

	CreatedAt time.Time `json:"created_at"`
}
