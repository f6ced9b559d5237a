package store

import (
	"context"
	"errors"
	"math"
	"sync"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"
	"Gardener-Assistant-Backend/pkg/payment"
	"Gardener-Assistant-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	StoreService interface {
		GetProducts(ctx context.Context, category string, page, limit int) ([]domain.ProductResponse, int64, error)
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartResponse, error)
		SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) (domain.CartResponse, error)
		RemoveFromCart(ctx context.Context, productID string, userID string) (domain.CartResponse, error)
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error)
	}

	storeService struct {
		storeRepository StoreRepository
		userRepository  user.UserRepository
		paymentService  payment.PaymentService

		mu    sync.Mutex
		carts map[string]*Cart
	}
)

func NewStoreService(storeRepository StoreRepository, userRepository user.UserRepository, paymentService payment.PaymentService) StoreService {
	return &storeService{
		storeRepository: storeRepository,
		userRepository:  userRepository,
		paymentService:  paymentService,
		carts:           make(map[string]*Cart),
	}
}

func (s *storeService) GetProducts(ctx context.Context, category string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.storeRepository.GetProducts(ctx, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return response, count, nil
}

// cartFor returns the caller's session cart, creating it on first use. Carts
// are not persisted; they live for the duration of the shopping session.
func (s *storeService) cartFor(userID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		cart = NewCart()
		s.carts[userID] = cart
	}
	return cart
}

func (s *storeService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartResponse, error) {
	product, err := s.storeRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartResponse{}, domain.ErrProductNotFound
		}
		return domain.CartResponse{}, err
	}

	if !product.InStock {
		return domain.CartResponse{}, domain.ErrProductOutOfStock
	}

	cart := s.cartFor(userID)
	if err := cart.Add(*product); err != nil {
		return domain.CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

func (s *storeService) SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) (domain.CartResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	cart := s.cartFor(userID)
	if err := cart.SetQuantity(productID, req.Quantity); err != nil {
		return domain.CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

func (s *storeService) RemoveFromCart(ctx context.Context, productID string, userID string) (domain.CartResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return domain.CartResponse{}, domain.ErrParseUUID
	}

	cart := s.cartFor(userID)
	if err := cart.Remove(id); err != nil {
		return domain.CartResponse{}, err
	}
	return toCartResponse(cart), nil
}

func (s *storeService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	return toCartResponse(s.cartFor(userID)), nil
}

// Checkout hands the cart off wholesale: lines and total become an order, a
// snap transaction is created for it, and the cart is cleared.
func (s *storeService) Checkout(ctx context.Context, userID string) (domain.CheckoutResponse, error) {
	cart := s.cartFor(userID)
	lines := cart.Lines()
	if len(lines) == 0 {
		return domain.CheckoutResponse{}, domain.ErrCartEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	gardener, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrUserNotFound
	}

	order := &entities.Order{
		ID:     uuid.New(),
		UserID: userUUID,
		Total:  cart.Total(),
		Status: "Pending",
	}
	for _, line := range lines {
		order.Items = append(order.Items, &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	if err := s.storeRepository.CreateOrder(ctx, order); err != nil {
		return domain.CheckoutResponse{}, err
	}

	token, redirect, err := s.paymentService.CreateSnapTransaction(
		order.ID.String(),
		int64(math.Round(order.Total)),
		gardener.Name,
		gardener.Email,
	)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	order.SnapToken = token
	order.SnapRedirect = redirect
	if err := s.storeRepository.UpdateOrder(ctx, order); err != nil {
		return domain.CheckoutResponse{}, err
	}

	cart.Clear()

	return domain.CheckoutResponse{
		OrderID:      order.ID.String(),
		Total:        order.Total,
		SnapToken:    token,
		SnapRedirect: redirect,
	}, nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		InStock:     product.InStock,
		ImageURL:    product.ImageURL,
	}
}

func toCartResponse(cart *Cart) domain.CartResponse {
	lines := cart.Lines()
	response := domain.CartResponse{Lines: make([]domain.CartLineResponse, 0, len(lines))}
	for _, line := range lines {
		response.Lines = append(response.Lines, domain.CartLineResponse{
			Product:  toProductResponse(&line.Product),
			Quantity: line.Quantity,
			Subtotal: line.Product.Price * float64(line.Quantity),
		})
	}
	response.Total = cart.Total()
	return response
}
