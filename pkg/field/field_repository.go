package field

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	FieldRepository interface {
		CreateField(ctx context.Context, field *entities.Field) error
		GetFieldByID(ctx context.Context, id string) (*entities.Field, error)
		GetFieldsByUser(ctx context.Context, userID string) ([]*entities.Field, error)
		UpdateField(ctx context.Context, field *entities.Field) error
		DeleteField(ctx context.Context, id string) error

		CreateZone(ctx context.Context, zone *entities.Zone) error
		GetZoneByID(ctx context.Context, id string) (*entities.Zone, error)
		DeleteZone(ctx context.Context, id string) error
	}

	fieldRepository struct {
		db *gorm.DB
	}
)

func NewFieldRepository(db *gorm.DB) FieldRepository {
	return &fieldRepository{db: db}
}

func (r *fieldRepository) CreateField(ctx context.Context, field *entities.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *fieldRepository) GetFieldByID(ctx context.Context, id string) (*entities.Field, error) {
	var field entities.Field
	if err := r.db.WithContext(ctx).Preload("Zones").Where("id = ?", id).First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldRepository) GetFieldsByUser(ctx context.Context, userID string) ([]*entities.Field, error) {
	var fields []*entities.Field
	if err := r.db.WithContext(ctx).
		Preload("Zones").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *fieldRepository) UpdateField(ctx context.Context, field *entities.Field) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *fieldRepository) DeleteField(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("field_id = ?", id).Delete(&entities.Zone{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Field{}).Error
}

func (r *fieldRepository) CreateZone(ctx context.Context, zone *entities.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *fieldRepository) GetZoneByID(ctx context.Context, id string) (*entities.Zone, error) {
	var zone entities.Zone
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *fieldRepository) DeleteZone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Zone{}).Error
}
