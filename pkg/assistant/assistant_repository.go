package assistant

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	AssistantRepository interface {
		CreateSession(ctx context.Context, session *entities.ChatSession) error
		GetSessionByID(ctx context.Context, id string) (*entities.ChatSession, error)
		GetSessionsByUser(ctx context.Context, userID string, limit int) ([]*entities.ChatSession, error)
		SaveMessage(ctx context.Context, message *entities.ChatMessage) error
		GetMessagesBySession(ctx context.Context, sessionID string) ([]*entities.ChatMessage, error)
		DeleteMessagesBySession(ctx context.Context, sessionID string) error
	}

	assistantRepository struct {
		db *gorm.DB
	}
)

func NewAssistantRepository(db *gorm.DB) AssistantRepository {
	return &assistantRepository{db: db}
}

func (r *assistantRepository) CreateSession(ctx context.Context, session *entities.ChatSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *assistantRepository) GetSessionByID(ctx context.Context, id string) (*entities.ChatSession, error) {
	var session entities.ChatSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *assistantRepository) GetSessionsByUser(ctx context.Context, userID string, limit int) ([]*entities.ChatSession, error) {
	var sessions []*entities.ChatSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *assistantRepository) SaveMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *assistantRepository) GetMessagesBySession(ctx context.Context, sessionID string) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *assistantRepository) DeleteMessagesBySession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&entities.ChatMessage{}).Error
}
