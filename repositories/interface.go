package repositories

import "estate-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetByPhone(phone string) (*entities.User, error)
	Update(user *entities.User) error
}

type ProfileRepository interface {
	GetByUserID(userID string) (*entities.Profile, error)
	Upsert(profile *entities.Profile) error
}

type DeveloperRepository interface {
	Create(dev *entities.Developer) error
	GetByID(id string) (*entities.Developer, error)
	GetByUserID(userID string) (*entities.Developer, error)
	GetAll() ([]entities.Developer, error)
	Update(dev *entities.Developer) error
}

// PropertySearch carries the supported listing filters. Zero values mean
// "no constraint".
type PropertySearch struct {
	Location    string
	MaxPrice    float64
	MinBedrooms int
	Limit       int
}

type PropertyRepository interface {
	Create(p *entities.Property) error
	GetByID(id string) (*entities.Property, error)
	GetAll() ([]entities.Property, error)
	GetByDeveloperID(developerID string) ([]entities.Property, error)
	Search(q PropertySearch) ([]entities.Property, error)
	Update(p *entities.Property) error
	Delete(id string) error
}

// ListRepository is the gateway for one list table (wishlists or
// compares): a single array-valued row per user. Get surfaces
// gorm.ErrRecordNotFound untouched so callers can treat absence as an
// empty list. Upsert inserts or replaces the row; Update requires it to
// already exist.
type ListRepository interface {
	Get(userID string) (*entities.ListRow, error)
	Upsert(row *entities.ListRow) error
	Update(row *entities.ListRow) error
}

type BlogPostRepository interface {
	Create(post *entities.BlogPost) error
	GetByID(id string) (*entities.BlogPost, error)
	GetPublished() ([]entities.BlogPost, error)
	Update(post *entities.BlogPost) error
}

type ChatRepository interface {
	CreateSession(session *entities.ChatSession) error
	GetSession(id string) (*entities.ChatSession, error)
	GetSessionsByUserID(userID string) ([]entities.ChatSession, error)
	CreateMessage(msg *entities.ChatMessage) error
	GetMessagesBySessionID(sessionID string) ([]entities.ChatMessage, error)
}

type TokenRepository interface {
	Create(token *entities.UserToken) error
	GetByToken(token string) (*entities.UserToken, error)
	Delete(id string) error
	DeleteByUserID(userID string) error
}

type ImageRepository interface {
	Create(img *entities.PropertyImage) error
	GetByID(id string) (*entities.PropertyImage, error)
	GetByPropertyID(propertyID string) ([]entities.PropertyImage, error)
	Delete(id string) error
}
