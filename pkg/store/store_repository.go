package store

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	StoreRepository interface {
		GetProducts(ctx context.Context, category string, page, limit int) ([]*entities.Product, int64, error)
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		CreateOrder(ctx context.Context, order *entities.Order) error
		UpdateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) GetProducts(ctx context.Context, category string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Product{})
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *storeRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *storeRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *storeRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *storeRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
