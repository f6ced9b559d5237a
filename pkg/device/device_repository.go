package device

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	DeviceRepository interface {
		CreateDevice(ctx context.Context, device *entities.Device) error
		GetDeviceBySerial(ctx context.Context, deviceID string) (*entities.Device, error)
		GetDevicesByUser(ctx context.Context, userID string) ([]*entities.Device, error)
	}

	deviceRepository struct {
		db *gorm.DB
	}
)

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) CreateDevice(ctx context.Context, device *entities.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepository) GetDeviceBySerial(ctx context.Context, deviceID string) (*entities.Device, error) {
	var device entities.Device
	if err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetDevicesByUser(ctx context.Context, userID string) ([]*entities.Device, error) {
	var devices []*entities.Device
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}
