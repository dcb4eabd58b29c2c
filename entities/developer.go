package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Developer is a property developer account's public listing profile.
type Developer struct {
	ID          string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	City        string         `json:"city"`
	Website     string         `json:"website"`
	LogoURL     string         `json:"logo_url"`
	Overview    string         `gorm:"type:text" json:"overview,omitempty"` // AI-generated, nullable
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (d *Developer) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	d.UpdatedAt = d.CreatedAt
	return
}
