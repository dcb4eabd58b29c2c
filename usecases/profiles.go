package usecases

import (
	"errors"

	"estate-server/entities"
	"estate-server/repositories"

	"gorm.io/gorm"
)

// ProfileUseCase manages user search preferences. A missing profile is
// absence, not an error: match scoring simply has nothing to score with.
type ProfileUseCase struct {
	repo repositories.ProfileRepository
}

func NewProfileUseCase(repo repositories.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get returns the user's profile, or nil when none has been saved yet.
func (uc *ProfileUseCase) Get(userID string) (*entities.Profile, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	profile, err := uc.repo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save upserts the user's preferences.
func (uc *ProfileUseCase) Save(userID string, profile *entities.Profile) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	profile.UserID = userID
	return uc.repo.Upsert(profile)
}
