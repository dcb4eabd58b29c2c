package repositories

import (
	"estate-server/db"
	"estate-server/entities"
)

type chatPgRepository struct {
	db db.Database
}

func NewChatPgRepository(database db.Database) ChatRepository {
	return &chatPgRepository{db: database}
}

func (r *chatPgRepository) CreateSession(session *entities.ChatSession) error {
	return r.db.GetDB().Create(session).Error
}

func (r *chatPgRepository) GetSession(id string) (*entities.ChatSession, error) {
	var session entities.ChatSession
	err := r.db.GetDB().Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *chatPgRepository) GetSessionsByUserID(userID string) ([]entities.ChatSession, error) {
	var sessions []entities.ChatSession
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *chatPgRepository) CreateMessage(msg *entities.ChatMessage) error {
	return r.db.GetDB().Create(msg).Error
}

func (r *chatPgRepository) GetMessagesBySessionID(sessionID string) ([]entities.ChatMessage, error) {
	var messages []entities.ChatMessage
	err := r.db.GetDB().Where("session_id = ?", sessionID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}
