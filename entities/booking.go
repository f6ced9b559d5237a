package entities

import (
	"time"

	"github.com/google/uuid"
)

type DroneBooking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	FieldID       uuid.UUID `json:"field_id"`
	ServiceType   string    `json:"service_type"` // "spray", "survey", "seeding"
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"` // "Pending", "Confirmed", "Cancelled"
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`

	User  *User  `gorm:"foreignKey:UserID"`
	Field *Field `gorm:"foreignKey:FieldID"`
	Timestamp
}
