package handlers

import (
	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

// Login puts the signed token directly in the envelope's data field; the
// mobile app stores that string verbatim as its bearer token.
func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	token, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, token, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}
