package handlers

import (
	"errors"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/diagnosis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiagnosisHandler interface {
		Diagnose(c *fiber.Ctx) error
		UploadScan(c *fiber.Ctx) error
		GetScanResult(c *fiber.Ctx) error
	}

	diagnosisHandler struct {
		diagnosisService diagnosis.DiagnosisService
		validator        *validator.Validate
	}
)

func NewDiagnosisHandler(diagnosisService diagnosis.DiagnosisService, validator *validator.Validate) DiagnosisHandler {
	return &diagnosisHandler{
		diagnosisService: diagnosisService,
		validator:        validator,
	}
}

func (h *diagnosisHandler) Diagnose(c *fiber.Ctx) error {
	req := new(domain.DiagnoseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiagnose, err)
	}

	res, err := h.diagnosisService.Diagnose(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrResponseNotParseable) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedDiagnose, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiagnose, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDiagnose)
}

func (h *diagnosisHandler) UploadScan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadScan, err)
	}

	req := domain.UploadScanRequest{Image: image}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadScan, err)
	}

	res, err := h.diagnosisService.UploadScan(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadScan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadScan)
}

func (h *diagnosisHandler) GetScanResult(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.diagnosisService.GetScanResult(c.Context(), scanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanResult, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScanResult)
}
