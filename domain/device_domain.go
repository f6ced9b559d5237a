package domain

import (
	"errors"
)

var (
	MessageSuccessAddDevice  = "device added successfully"
	MessageSuccessGetDevices = "devices retrieved successfully"

	MessageFailedAddDevice  = "failed to add device"
	MessageFailedGetDevices = "failed to retrieve devices"

	ErrDeviceAlreadyRegistered = errors.New("device already registered")
	ErrDeviceNotFound          = errors.New("device not found")
)

type (
	AddDeviceRequest struct {
		DeviceID string `json:"deviceId" validate:"required,min=4"`
		Name     string `json:"name" validate:"omitempty"`
	}

	AddDeviceResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}

	DeviceResponse struct {
		ID       string `json:"id"`
		DeviceID string `json:"device_id"`
		Name     string `json:"name,omitempty"`
		Status   string `json:"status"`
	}
)
