package usecases

import (
	"errors"

	"estate-server/entities"
	"estate-server/repositories"

	"gorm.io/gorm"
)

// PropertyUseCase owns the developer-facing listing lifecycle. Reads for
// browsing go through the PropertyStore; this layer is where ownership
// is enforced: a listing is mutated only by its developer or an admin.
type PropertyUseCase struct {
	properties repositories.PropertyRepository
	developers repositories.DeveloperRepository
}

func NewPropertyUseCase(properties repositories.PropertyRepository, developers repositories.DeveloperRepository) *PropertyUseCase {
	return &PropertyUseCase{properties: properties, developers: developers}
}

// developerFor resolves the acting user's developer profile.
func (uc *PropertyUseCase) developerFor(userID string) (*entities.Developer, error) {
	dev, err := uc.developers.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Create publishes a new listing under the acting developer.
func (uc *PropertyUseCase) Create(userID string, p *entities.Property) error {
	if p.Title == "" {
		return errors.New("property title is required")
	}
	if p.Location == "" {
		return errors.New("property location is required")
	}

	dev, err := uc.developerFor(userID)
	if err != nil {
		return err
	}
	p.DeveloperID = dev.ID
	return uc.properties.Create(p)
}

// Update applies provided fields to an existing listing. Only the owning
// developer (or an admin) may mutate it.
func (uc *PropertyUseCase) Update(userID, role string, p *entities.Property) (*entities.Property, error) {
	if p.ID == "" {
		return nil, errors.New("property id is required")
	}

	existing, err := uc.properties.GetByID(p.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(userID, role, existing); err != nil {
		return nil, err
	}

	if p.Title != "" {
		existing.Title = p.Title
	}
	if p.Location != "" {
		existing.Location = p.Location
	}
	if p.PriceMin != 0 {
		existing.PriceMin = p.PriceMin
	}
	if p.PriceMax != 0 {
		existing.PriceMax = p.PriceMax
	}
	if p.BedroomsMin != 0 {
		existing.BedroomsMin = p.BedroomsMin
	}
	if p.BedroomsMax != 0 {
		existing.BedroomsMax = p.BedroomsMax
	}
	if p.SqftMin != 0 {
		existing.SqftMin = p.SqftMin
	}
	if p.SqftMax != 0 {
		existing.SqftMax = p.SqftMax
	}
	if p.Latitude != nil {
		existing.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		existing.Longitude = p.Longitude
	}
	if len(p.Amenities) > 0 {
		existing.Amenities = p.Amenities
	}

	if err := uc.properties.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetOverview stores the generated overview blob on the listing.
func (uc *PropertyUseCase) SetOverview(userID, role, propertyID, overview string) (*entities.Property, error) {
	existing, err := uc.properties.GetByID(propertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := uc.authorize(userID, role, existing); err != nil {
		return nil, err
	}
	existing.AIOverview = overview
	if err := uc.properties.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a listing, subject to the same ownership rule.
func (uc *PropertyUseCase) Delete(userID, role, id string) error {
	existing, err := uc.properties.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := uc.authorize(userID, role, existing); err != nil {
		return err
	}
	return uc.properties.Delete(id)
}

// ListByOwner returns the acting developer's own listings.
func (uc *PropertyUseCase) ListByOwner(userID string) ([]entities.Property, error) {
	dev, err := uc.developerFor(userID)
	if err != nil {
		return nil, err
	}
	return uc.properties.GetByDeveloperID(dev.ID)
}

func (uc *PropertyUseCase) GetAll() ([]entities.Property, error) {
	return uc.properties.GetAll()
}

// Authorize checks that the acting user may mutate the given listing.
func (uc *PropertyUseCase) Authorize(userID, role, propertyID string) error {
	existing, err := uc.properties.GetByID(propertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return uc.authorize(userID, role, existing)
}

func (uc *PropertyUseCase) authorize(userID, role string, p *entities.Property) error {
	if role == entities.RoleAdmin {
		return nil
	}
	dev, err := uc.developerFor(userID)
	if err != nil {
		return err
	}
	if dev.ID != p.DeveloperID {
		return ErrForbidden
	}
	return nil
}
