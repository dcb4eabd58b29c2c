package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type imagePgRepository struct {
	db db.Database
}

func NewImagePgRepository(database db.Database) ImageRepository {
	return &imagePgRepository{db: database}
}

func (r *imagePgRepository) Create(img *entities.PropertyImage) error {
	return r.db.GetDB().Create(img).Error
}

func (r *imagePgRepository) GetByID(id string) (*entities.PropertyImage, error) {
	var img entities.PropertyImage
	err := r.db.GetDB().Where("id = ?", id).First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imagePgRepository) GetByPropertyID(propertyID string) ([]entities.PropertyImage, error) {
	var images []entities.PropertyImage
	err := r.db.GetDB().Where("property_id = ?", propertyID).Order("position ASC, created_at ASC").Find(&images).Error
	return images, err
}

func (r *imagePgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.PropertyImage{}).Error
}
