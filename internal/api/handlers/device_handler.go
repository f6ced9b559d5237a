package handlers

import (
	"errors"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/device"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeviceHandler interface {
		AddDevice(c *fiber.Ctx) error
		GetDevices(c *fiber.Ctx) error
	}

	deviceHandler struct {
		deviceService device.DeviceService
		validator     *validator.Validate
	}
)

func NewDeviceHandler(deviceService device.DeviceService, validator *validator.Validate) DeviceHandler {
	return &deviceHandler{
		deviceService: deviceService,
		validator:     validator,
	}
}

func (h *deviceHandler) AddDevice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddDeviceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDevice, err)
	}

	res, err := h.deviceService.AddDevice(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceAlreadyRegistered) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddDevice, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDevice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDevice)
}

func (h *deviceHandler) GetDevices(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.deviceService.GetDevices(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDevices, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDevices)
}
