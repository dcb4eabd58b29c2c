package usecases

import (
	"errors"
	"strings"

	"estate-server/entities"
	"estate-server/repositories"

	"gorm.io/gorm"
)

// BlogUseCase serves the content pages (blogs/news).
type BlogUseCase struct {
	repo repositories.BlogPostRepository
}

func NewBlogUseCase(repo repositories.BlogPostRepository) *BlogUseCase {
	return &BlogUseCase{repo: repo}
}

// ListPublished returns published posts, newest first.
func (uc *BlogUseCase) ListPublished() ([]entities.BlogPost, error) {
	return uc.repo.GetPublished()
}

func (uc *BlogUseCase) Get(id string) (*entities.BlogPost, error) {
	post, err := uc.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return post, err
}

// Create publishes a new post under the given author.
func (uc *BlogUseCase) Create(authorID string, post *entities.BlogPost) error {
	if post.Title == "" {
		return errors.New("post title is required")
	}
	if post.Body == "" {
		return errors.New("post body is required")
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	post.AuthorID = authorID
	return uc.repo.Create(post)
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
