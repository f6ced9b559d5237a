package handlers

import (
	"errors"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/assistant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AssistantHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetSession(c *fiber.Ctx) error
		ListSessions(c *fiber.Ctx) error
		ResetSession(c *fiber.Ctx) error
	}

	assistantHandler struct {
		assistantService assistant.AssistantService
		validator        *validator.Validate
	}
)

func NewAssistantHandler(assistantService assistant.AssistantService, validator *validator.Validate) AssistantHandler {
	return &assistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *assistantHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	res, err := h.assistantService.SendMessage(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrReplyPending) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSendMessage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendMessage)
}

func (h *assistantHandler) GetSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")

	res, err := h.assistantService.GetSession(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSession)
}

func (h *assistantHandler) ListSessions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.assistantService.ListSessions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListSessions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListSessions)
}

func (h *assistantHandler) ResetSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")

	if err := h.assistantService.ResetSession(c.Context(), sessionID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResetSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetSession)
}
