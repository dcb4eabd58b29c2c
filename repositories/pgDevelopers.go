package repositories

import (
	"time"

	"estate-server/db"
	"estate-server/entities"
)

type developerPgRepository struct {
	db db.Database
}

func NewDeveloperPgRepository(database db.Database) DeveloperRepository {
	return &developerPgRepository{db: database}
}

func (r *developerPgRepository) Create(dev *entities.Developer) error {
	return r.db.GetDB().Create(dev).Error
}

func (r *developerPgRepository) GetByID(id string) (*entities.Developer, error) {
	var dev entities.Developer
	err := r.db.GetDB().Where("id = ?", id).First(&dev).Error
	if err != nil {
		return nil, err
	}
	return &dev, nil
}

func (r *developerPgRepository) GetByUserID(userID string) (*entities.Developer, error) {
	var dev entities.Developer
	err := r.db.GetDB().Where("user_id = ?", userID).First(&dev).Error
	if err != nil {
		return nil, err
	}
	return &dev, nil
}

func (r *developerPgRepository) GetAll() ([]entities.Developer, error) {
	var devs []entities.Developer
	err := r.db.GetDB().Order("created_at DESC").Find(&devs).Error
	return devs, err
}

func (r *developerPgRepository) Update(dev *entities.Developer) error {
	dev.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(dev).Error
}
