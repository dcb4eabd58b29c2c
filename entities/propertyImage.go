package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyImage is the metadata row for one hosted image of a property.
// The binary lives in object storage under properties/<property_id>/.
type PropertyImage struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PropertyID string `gorm:"type:varchar(36);index" json:"property_id"`
	PublicID   string `gorm:"uniqueIndex" json:"public_id"` // storage key
	URL        string `json:"url"`
	Position   int    `json:"position"`
	CreatedAt  string `json:"created_at"`
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}
