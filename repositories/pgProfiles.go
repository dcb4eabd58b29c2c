package repositories

import (
	"time"

	"estate-server/db"
	"estate-server/entities"

	"gorm.io/gorm/clause"
)

type profilePgRepository struct {
	db db.Database
}

func NewProfilePgRepository(database db.Database) ProfileRepository {
	return &profilePgRepository{db: database}
}

func (r *profilePgRepository) GetByUserID(userID string) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.GetDB().Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profilePgRepository) Upsert(profile *entities.Profile) error {
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget", "preferred_location", "bedrooms", "property_type", "updated_at"}),
	}).Create(profile).Error
}
