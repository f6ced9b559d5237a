package entities

import (
	"time"

	"github.com/google/uuid"
)

type Field struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	Name          string    `json:"name"`
	CropType      string    `json:"crop_type"`
	AreaHectare   float64   `json:"area_hectare"`
	SoilType      string    `json:"soil_type"`      // "sand", "loam", "clay"
	IrrigationSrc string    `json:"irrigation_src"` // "well", "surface", "rain", "none"

	User  *User   `gorm:"foreignKey:UserID"`
	Zones []*Zone `gorm:"foreignKey:FieldID"`
	Timestamp
}

type Zone struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FieldID      uuid.UUID `gorm:"index" json:"field_id"`
	Name         string    `json:"name"`
	PlantedCrop  string    `json:"planted_crop,omitempty"`
	PlantingDate time.Time `json:"planting_date,omitempty"`

	Field *Field `gorm:"foreignKey:FieldID"`
	Timestamp
}
