package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property is a listing owned by a developer. Price, bedroom and area
// bounds are ranges; min <= max is a convention, not enforced here.
type Property struct {
	ID          string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Location    string         `gorm:"index" json:"location"`
	PriceMin    float64        `json:"price_min"`
	PriceMax    float64        `json:"price_max"`
	BedroomsMin int            `json:"bedrooms_min"`
	BedroomsMax int            `json:"bedrooms_max"`
	SqftMin     float64        `json:"sqft_min"`
	SqftMax     float64        `json:"sqft_max"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	DeveloperID string         `gorm:"index;type:varchar(36)" json:"developer_id"`
	Amenities   datatypes.JSON `json:"amenities"`                           // ordered tag list
	AIOverview  string         `gorm:"type:text" json:"ai_overview,omitempty"` // opaque generated blob
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
