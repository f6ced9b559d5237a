package entities

import (
	"github.com/google/uuid"
)

type PlantScan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"` // "Pending", "Processed", "Failed"
	DiseaseName string    `json:"disease_name,omitempty"`
	ResultJSON  string    `gorm:"type:text" json:"result_json,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
