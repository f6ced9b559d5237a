package diagnosis

import (
	"context"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

type (
	DiagnosisRepository interface {
		CreatePlantScan(ctx context.Context, scan *entities.PlantScan) error
		GetPlantScanByID(ctx context.Context, id string) (*entities.PlantScan, error)
		UpdatePlantScan(ctx context.Context, scan *entities.PlantScan) error
	}

	diagnosisRepository struct {
		db *gorm.DB
	}
)

func NewDiagnosisRepository(db *gorm.DB) DiagnosisRepository {
	return &diagnosisRepository{db: db}
}

func (r *diagnosisRepository) CreatePlantScan(ctx context.Context, scan *entities.PlantScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *diagnosisRepository) GetPlantScanByID(ctx context.Context, id string) (*entities.PlantScan, error) {
	var scan entities.PlantScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *diagnosisRepository) UpdatePlantScan(ctx context.Context, scan *entities.PlantScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
