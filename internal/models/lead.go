package models

import "time"

// Lead captured by the public site widgets (audit form, contact form, exit popup).
type Lead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Company string `gorm:"size:100" json:"company"`
	Website string `gorm:"size:255" json:"website"`

	Source  string `gorm:"size:50;index" json:"source"`
	Message string `gorm:"size:1000" json:"message"`

	Status string `gorm:"size:20;default:'new';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadQualified = "qualified"
	LeadDiscarded = "discarded"
)
