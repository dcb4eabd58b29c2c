package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserToken is a long-lived refresh token row. Access tokens are stateless
// JWTs; refresh tokens are looked up here and rotated on use.
type UserToken struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string `gorm:"type:varchar(36);index" json:"user_id"`
	Token     string `gorm:"uniqueIndex" json:"-"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

func (t *UserToken) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}

// Expired reports whether the token's expiry has passed. A malformed
// expiry reads as expired.
func (t *UserToken) Expired() bool {
	exp, err := time.Parse(time.RFC3339, t.ExpiresAt)
	if err != nil {
		return true
	}
	return time.Now().UTC().After(exp)
}
