package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is a content page entry (blog or news).
type BlogPost struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Slug      string         `gorm:"uniqueIndex" json:"slug"`
	Body      string         `gorm:"type:text" json:"body"`
	AuthorID  string         `gorm:"type:varchar(36);index" json:"author_id"`
	CoverURL  string         `json:"cover_url"`
	Published bool           `gorm:"index" json:"published"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	b.UpdatedAt = b.CreatedAt
	return
}
