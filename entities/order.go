package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"` // "Pending", "Paid", "Cancelled"
	SnapToken    string    `json:"snap_token,omitempty"`
	SnapRedirect string    `json:"snap_redirect,omitempty"`

	User  *User        `gorm:"foreignKey:UserID"`
	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `gorm:"index" json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
