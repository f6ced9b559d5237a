package handlers

import (
	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/field"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FieldHandler interface {
		AddField(c *fiber.Ctx) error
		UpdateField(c *fiber.Ctx) error
		DeleteField(c *fiber.Ctx) error
		GetFields(c *fiber.Ctx) error
		GetFieldByID(c *fiber.Ctx) error
		AddZone(c *fiber.Ctx) error
		DeleteZone(c *fiber.Ctx) error
	}

	fieldHandler struct {
		fieldService field.FieldService
		validator    *validator.Validate
	}
)

func NewFieldHandler(fieldService field.FieldService, validator *validator.Validate) FieldHandler {
	return &fieldHandler{
		fieldService: fieldService,
		validator:    validator,
	}
}

func (h *fieldHandler) AddField(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFieldRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddField, err)
	}

	res, err := h.fieldService.AddField(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddField, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddField)
}

func (h *fieldHandler) UpdateField(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fieldID := c.Params("id")
	req := new(domain.UpdateFieldRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateField, err)
	}

	if err := h.fieldService.UpdateField(c.Context(), fieldID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateField, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateField)
}

func (h *fieldHandler) DeleteField(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fieldID := c.Params("id")

	if err := h.fieldService.DeleteField(c.Context(), fieldID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteField, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteField)
}

func (h *fieldHandler) GetFields(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fieldService.GetFields(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFields, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFields)
}

func (h *fieldHandler) GetFieldByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fieldID := c.Params("id")

	res, err := h.fieldService.GetFieldByID(c.Context(), fieldID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFields, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFields)
}

func (h *fieldHandler) AddZone(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fieldID := c.Params("id")
	req := new(domain.AddZoneRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddZone, err)
	}

	res, err := h.fieldService.AddZone(c.Context(), fieldID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddZone, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddZone)
}

func (h *fieldHandler) DeleteZone(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fieldID := c.Params("id")
	zoneID := c.Params("zoneId")

	if err := h.fieldService.DeleteZone(c.Context(), fieldID, zoneID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteZone, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteZone)
}
