package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListRow is one user's wishlist or compare list, stored as a single row
// with a JSON array of property ids in insertion order. The same shape
// backs both tables (wishlists, compares); the repository picks the table.
type ListRow struct {
	UserID      string         `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	PropertyIDs datatypes.JSON `json:"property_ids"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

func (l *ListRow) BeforeCreate(tx *gorm.DB) (err error) {
	if l.CreatedAt == "" {
		l.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	l.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}

// IDs decodes the stored array. A missing or corrupt column reads as empty.
func (l *ListRow) IDs() []string {
	if len(l.PropertyIDs) == 0 {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal(l.PropertyIDs, &ids); err != nil {
		return []string{}
	}
	return ids
}

func (l *ListRow) SetIDs(ids []string) {
	b, _ := json.Marshal(ids)
	l.PropertyIDs = datatypes.JSON(b)
	l.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
