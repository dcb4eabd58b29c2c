package repositories

import (
	"time"

	"estate-server/db"
	"estate-server/entities"
)

type propertyPgRepository struct {
	db db.Database
}

func NewPropertyPgRepository(database db.Database) PropertyRepository {
	return &propertyPgRepository{db: database}
}

func (r *propertyPgRepository) Create(p *entities.Property) error {
	return r.db.GetDB().Create(p).Error
}

func (r *propertyPgRepository) GetByID(id string) (*entities.Property, error) {
	var p entities.Property
	err := r.db.GetDB().Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyPgRepository) GetAll() ([]entities.Property, error) {
	var properties []entities.Property
	err := r.db.GetDB().Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (r *propertyPgRepository) GetByDeveloperID(developerID string) ([]entities.Property, error) {
	var properties []entities.Property
	err := r.db.GetDB().Where("developer_id = ?", developerID).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (r *propertyPgRepository) Search(q PropertySearch) ([]entities.Property, error) {
	tx := r.db.GetDB().Model(&entities.Property{})
	if q.Location != "" {
		tx = tx.Where("location ILIKE ?", "%"+q.Location+"%")
	}
	if q.MaxPrice > 0 {
		tx = tx.Where("price_min <= ?", q.MaxPrice)
	}
	if q.MinBedrooms > 0 {
		tx = tx.Where("bedrooms_max >= ?", q.MinBedrooms)
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var properties []entities.Property
	err := tx.Order("created_at DESC").Limit(limit).Find(&properties).Error
	return properties, err
}

func (r *propertyPgRepository) Update(p *entities.Property) error {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(p).Error
}

func (r *propertyPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Property{}).Error
}
