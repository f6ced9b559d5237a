package entities

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `json:"category"` // "fertilizer", "pesticide", "seeds", "tools"
	Price       float64   `json:"price"`
	InStock     bool      `json:"in_stock"`
	ImageURL    string    `json:"image_url,omitempty"`

	Timestamp
}
