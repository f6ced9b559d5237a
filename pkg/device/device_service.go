package device

import (
	"context"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
)

type (
	DeviceService interface {
		AddDevice(ctx context.Context, req domain.AddDeviceRequest, userID string) (domain.AddDeviceResponse, error)
		GetDevices(ctx context.Context, userID string) ([]domain.DeviceResponse, error)
	}

	deviceService struct {
		deviceRepository DeviceRepository
	}
)

func NewDeviceService(deviceRepository DeviceRepository) DeviceService {
	return &deviceService{deviceRepository: deviceRepository}
}

func (s *deviceService) AddDevice(ctx context.Context, req domain.AddDeviceRequest, userID string) (domain.AddDeviceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddDeviceResponse{}, domain.ErrParseUUID
	}

	if _, err := s.deviceRepository.GetDeviceBySerial(ctx, req.DeviceID); err == nil {
		return domain.AddDeviceResponse{}, domain.ErrDeviceAlreadyRegistered
	}

	device := &entities.Device{
		ID:       uuid.New(),
		UserID:   userUUID,
		DeviceID: req.DeviceID,
		Name:     req.Name,
		Status:   "Active",
	}

	if err := s.deviceRepository.CreateDevice(ctx, device); err != nil {
		return domain.AddDeviceResponse{}, err
	}

	return domain.AddDeviceResponse{
		Success: true,
		Message: domain.MessageSuccessAddDevice,
	}, nil
}

func (s *deviceService) GetDevices(ctx context.Context, userID string) ([]domain.DeviceResponse, error) {
	devices, err := s.deviceRepository.GetDevicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.DeviceResponse
	for _, device := range devices {
		response = append(response, domain.DeviceResponse{
			ID:       device.ID.String(),
			DeviceID: device.DeviceID,
			Name:     device.Name,
			Status:   device.Status,
		})
	}
	return response, nil
}
