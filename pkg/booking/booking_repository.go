package booking

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	BookingRepository interface {
		CreateBooking(ctx context.Context, booking *entities.DroneBooking) error
		GetBookingByID(ctx context.Context, id string) (*entities.DroneBooking, error)
		GetBookingsByUser(ctx context.Context, userID string) ([]*entities.DroneBooking, error)
		UpdateBooking(ctx context.Context, booking *entities.DroneBooking) error
	}

	bookingRepository struct {
		db *gorm.DB
	}
)

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *entities.DroneBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, id string) (*entities.DroneBooking, error) {
	var booking entities.DroneBooking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetBookingsByUser(ctx context.Context, userID string) ([]*entities.DroneBooking, error) {
	var bookings []*entities.DroneBooking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_date asc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, booking *entities.DroneBooking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}
