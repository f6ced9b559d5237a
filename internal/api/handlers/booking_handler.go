package handlers

import (
	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/booking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BookingHandler interface {
		CreateBooking(c *fiber.Ctx) error
		GetBookings(c *fiber.Ctx) error
		CancelBooking(c *fiber.Ctx) error
	}

	bookingHandler struct {
		bookingService booking.BookingService
		validator      *validator.Validate
	}
)

func NewBookingHandler(bookingService booking.BookingService, validator *validator.Validate) BookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
		validator:      validator,
	}
}

func (h *bookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBookingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBooking, err)
	}

	res, err := h.bookingService.CreateBooking(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBooking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBooking)
}

func (h *bookingHandler) GetBookings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.bookingService.GetBookings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBookings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBookings)
}

func (h *bookingHandler) CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookingID := c.Params("id")

	if err := h.bookingService.CancelBooking(c.Context(), bookingID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelBooking, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelBooking)
}
