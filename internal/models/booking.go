package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference returned to the customer on submission.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	// Contact
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// Business profile
	Company    string `gorm:"size:100" json:"company"`
	Website    string `gorm:"size:255" json:"website"`
	Industry   string `gorm:"size:50" json:"industry"`
	AdBudget   string `gorm:"size:50" json:"ad_budget"`
	GoalsNotes string `gorm:"size:1000" json:"goals_notes"`

	// Requested slot. Date is a calendar date in the agency timezone;
	// StartTime/EndTime are HH:MM strings matching a slot template.
	Date      time.Time `gorm:"type:date;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CalendarEventID string `gorm:"size:255" json:"calendar_event_id"`
	Notes           string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
