package usecases

import (
	"errors"

	"estate-server/entities"
	"estate-server/repositories"

	"gorm.io/gorm"
)

// DeveloperUseCase manages developer listing profiles.
type DeveloperUseCase struct {
	repo repositories.DeveloperRepository
}

func NewDeveloperUseCase(repo repositories.DeveloperRepository) *DeveloperUseCase {
	return &DeveloperUseCase{repo: repo}
}

func (uc *DeveloperUseCase) GetAll() ([]entities.Developer, error) {
	return uc.repo.GetAll()
}

func (uc *DeveloperUseCase) Get(id string) (*entities.Developer, error) {
	dev, err := uc.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return dev, err
}

// Create sets up the developer profile for a developer-role account.
// One profile per account.
func (uc *DeveloperUseCase) Create(userID string, dev *entities.Developer) error {
	if dev.Name == "" {
		return errors.New("developer name is required")
	}
	if _, err := uc.repo.GetByUserID(userID); err == nil {
		return errors.New("developer profile already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	dev.UserID = userID
	return uc.repo.Create(dev)
}

// Update applies provided fields to the caller's own profile; admins may
// update any profile.
func (uc *DeveloperUseCase) Update(userID, role, devID string, changes *entities.Developer) (*entities.Developer, error) {
	existing, err := uc.Get(devID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID && role != entities.RoleAdmin {
		return nil, ErrForbidden
	}

	if changes.Name != "" {
		existing.Name = changes.Name
	}
	if changes.Description != "" {
		existing.Description = changes.Description
	}
	if changes.City != "" {
		existing.City = changes.City
	}
	if changes.Website != "" {
		existing.Website = changes.Website
	}
	if changes.LogoURL != "" {
		existing.LogoURL = changes.LogoURL
	}
	if changes.Overview != "" {
		existing.Overview = changes.Overview
	}

	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
