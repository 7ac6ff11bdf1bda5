package models

import "time"

type CaseStudy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title      string `gorm:"size:150;not null" json:"title"`
	Slug       string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	ClientName string `gorm:"size:100" json:"client_name"`
	Industry   string `gorm:"size:50" json:"industry"`

	Challenge string `gorm:"type:text" json:"challenge"`
	Solution  string `gorm:"type:text" json:"solution"`
	Results   string `gorm:"type:text" json:"results"`

	// JSON array of {label, value} pairs, e.g. [{"label":"ROAS","value":"4.2x"}].
	Metrics string `gorm:"type:text" json:"metrics"`

	// JSON array of object-storage keys. Uploads happen out of band;
	// the API only resolves keys to presigned URLs when serving.
	ImageKeys string `gorm:"type:text" json:"image_keys"`

	Status      string     `gorm:"size:20;default:'draft';index" json:"status"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	CaseStudyDraft     = "draft"
	CaseStudyPublished = "published"
)
