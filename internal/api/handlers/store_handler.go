package handlers

import (
	"errors"
	"strconv"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StoreHandler interface {
		GetProducts(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		SetQuantity(c *fiber.Ctx) error
		RemoveFromCart(c *fiber.Ctx) error
		GetCart(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	storeHandler struct {
		storeService store.StoreService
		validator    *validator.Validate
	}
)

func NewStoreHandler(storeService store.StoreService, validator *validator.Validate) StoreHandler {
	return &storeHandler{
		storeService: storeService,
		validator:    validator,
	}
}

func (h *storeHandler) GetProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	products, total, err := h.storeService.GetProducts(c.Context(), category, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"total":    total,
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *storeHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	res, err := h.storeService.AddToCart(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProductAlreadyInCart) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddToCart, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddToCart)
}

func (h *storeHandler) SetQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	res, err := h.storeService.SetQuantity(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCart)
}

func (h *storeHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("productId")

	res, err := h.storeService.RemoveFromCart(c.Context(), productID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCart)
}

func (h *storeHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.storeService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *storeHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.storeService.Checkout(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}
