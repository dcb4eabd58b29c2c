package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type tokenPgRepository struct {
	db db.Database
}

func NewTokenPgRepository(database db.Database) TokenRepository {
	return &tokenPgRepository{db: database}
}

func (r *tokenPgRepository) Create(token *entities.UserToken) error {
	return r.db.GetDB().Create(token).Error
}

func (r *tokenPgRepository) GetByToken(token string) (*entities.UserToken, error) {
	var row entities.UserToken
	err := r.db.GetDB().Where("token = ?", token).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *tokenPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.UserToken{}).Error
}

func (r *tokenPgRepository) DeleteByUserID(userID string) error {
	return r.db.GetDB().Where("user_id = ?", userID).Delete(&entities.UserToken{}).Error
}
