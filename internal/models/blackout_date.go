package models

import "time"

// BlackoutDate suppresses every slot on the given calendar date.
type BlackoutDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
