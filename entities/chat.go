package entities

import (
	"github.com/google/uuid"
)

type ChatSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Title  string    `json:"title"`

	User     *User          `gorm:"foreignKey:UserID"`
	Messages []*ChatMessage `gorm:"foreignKey:SessionID"`
	Timestamp
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SessionID uuid.UUID `gorm:"index" json:"session_id"`
	Sender    string    `json:"sender"` // "user", "assistant"
	Content   string    `gorm:"type:text" json:"content"`

	Session *ChatSession `gorm:"foreignKey:SessionID"`
	Timestamp
}
