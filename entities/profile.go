package entities

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds a user's stated search preferences, used for match scoring.
type Profile struct {
	UserID            string  `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	Budget            float64 `json:"budget"`
	PreferredLocation string  `json:"preferred_location"`
	Bedrooms          int     `json:"bedrooms"`
	PropertyType      string  `json:"property_type"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
