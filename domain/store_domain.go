package domain

import (
	"errors"
)

var (
	MessageSuccessGetProducts = "products retrieved successfully"
	MessageSuccessAddToCart   = "product added to cart"
	MessageSuccessUpdateCart  = "cart updated successfully"
	MessageSuccessGetCart     = "cart retrieved successfully"
	MessageSuccessCheckout    = "checkout created successfully"

	MessageFailedGetProducts = "failed to retrieve products"
	MessageFailedAddToCart   = "failed to add product to cart"
	MessageFailedUpdateCart  = "failed to update cart"
	MessageFailedGetCart     = "failed to retrieve cart"
	MessageFailedCheckout    = "failed to create checkout"

	ErrProductNotFound      = errors.New("product not found")
	ErrProductOutOfStock    = errors.New("product is out of stock")
	ErrProductAlreadyInCart = errors.New("product already in cart")
	ErrCartLineNotFound     = errors.New("product not in cart")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("quantity must not be negative")
)

type (
	ProductResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
		InStock     bool    `json:"in_stock"`
		ImageURL    string  `json:"image_url,omitempty"`
	}

	AddToCartRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
	}

	SetQuantityRequest struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"min=0"`
	}

	CartLineResponse struct {
		Product  ProductResponse `json:"product"`
		Quantity int             `json:"quantity"`
		Subtotal float64         `json:"subtotal"`
	}

	CartResponse struct {
		Lines []CartLineResponse `json:"lines"`
		Total float64            `json:"total"`
	}

	CheckoutResponse struct {
		OrderID      string  `json:"order_id"`
		Total        float64 `json:"total"`
		SnapToken    string  `json:"snap_token,omitempty"`
		SnapRedirect string  `json:"snap_redirect,omitempty"`
	}
)
