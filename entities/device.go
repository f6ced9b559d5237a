package entities

import (
	"github.com/google/uuid"
)

type Device struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	DeviceID string    `gorm:"uniqueIndex" json:"device_id"` // hardware serial printed on the unit
	Name     string    `json:"name,omitempty"`
	Status   string    `json:"status"` // "Active", "Offline"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
