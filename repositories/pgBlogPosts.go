package repositories

import (
	"time"

	"estate-server/db"
	"estate-server/entities"
)

type blogPostPgRepository struct {
	db db.Database
}

func NewBlogPostPgRepository(database db.Database) BlogPostRepository {
	return &blogPostPgRepository{db: database}
}

func (r *blogPostPgRepository) Create(post *entities.BlogPost) error {
	return r.db.GetDB().Create(post).Error
}

func (r *blogPostPgRepository) GetByID(id string) (*entities.BlogPost, error) {
	var post entities.BlogPost
	err := r.db.GetDB().Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostPgRepository) GetPublished() ([]entities.BlogPost, error) {
	var posts []entities.BlogPost
	err := r.db.GetDB().Where("published = ?", true).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogPostPgRepository) Update(post *entities.BlogPost) error {
	post.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(post).Error
}
