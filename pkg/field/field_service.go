package field

import (
	"context"
	"errors"
	"time"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FieldService interface {
		AddField(ctx context.Context, req domain.AddFieldRequest, userID string) (domain.FieldResponse, error)
		UpdateField(ctx context.Context, id string, req domain.UpdateFieldRequest, userID string) error
		DeleteField(ctx context.Context, id string, userID string) error
		GetFields(ctx context.Context, userID string) ([]domain.FieldResponse, error)
		GetFieldByID(ctx context.Context, id string, userID string) (domain.FieldResponse, error)
		AddZone(ctx context.Context, fieldID string, req domain.AddZoneRequest, userID string) (domain.ZoneResponse, error)
		DeleteZone(ctx context.Context, fieldID string, zoneID string, userID string) error
	}

	fieldService struct {
		fieldRepository FieldRepository
	}
)

func NewFieldService(fieldRepository FieldRepository) FieldService {
	return &fieldService{fieldRepository: fieldRepository}
}

func (s *fieldService) AddField(ctx context.Context, req domain.AddFieldRequest, userID string) (domain.FieldResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FieldResponse{}, domain.ErrParseUUID
	}

	field := &entities.Field{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		CropType:      req.CropType,
		AreaHectare:   req.AreaHectare,
		SoilType:      req.SoilType,
		IrrigationSrc: req.IrrigationSrc,
	}

	if err := s.fieldRepository.CreateField(ctx, field); err != nil {
		return domain.FieldResponse{}, err
	}

	return toFieldResponse(field), nil
}

func (s *fieldService) UpdateField(ctx context.Context, id string, req domain.UpdateFieldRequest, userID string) error {
	field, err := s.ownedField(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		field.Name = req.Name
	}
	if req.CropType != "" {
		field.CropType = req.CropType
	}
	if req.AreaHectare > 0 {
		field.AreaHectare = req.AreaHectare
	}
	if req.SoilType != "" {
		field.SoilType = req.SoilType
	}
	if req.IrrigationSrc != "" {
		field.IrrigationSrc = req.IrrigationSrc
	}

	return s.fieldRepository.UpdateField(ctx, field)
}

func (s *fieldService) DeleteField(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedField(ctx, id, userID); err != nil {
		return err
	}
	return s.fieldRepository.DeleteField(ctx, id)
}

func (s *fieldService) GetFields(ctx context.Context, userID string) ([]domain.FieldResponse, error) {
	fields, err := s.fieldRepository.GetFieldsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.FieldResponse
	for _, field := range fields {
		response = append(response, toFieldResponse(field))
	}
	return response, nil
}

func (s *fieldService) GetFieldByID(ctx context.Context, id string, userID string) (domain.FieldResponse, error) {
	field, err := s.ownedField(ctx, id, userID)
	if err != nil {
		return domain.FieldResponse{}, err
	}
	return toFieldResponse(field), nil
}

func (s *fieldService) AddZone(ctx context.Context, fieldID string, req domain.AddZoneRequest, userID string) (domain.ZoneResponse, error) {
	field, err := s.ownedField(ctx, fieldID, userID)
	if err != nil {
		return domain.ZoneResponse{}, err
	}

	zone := &entities.Zone{
		ID:          uuid.New(),
		FieldID:     field.ID,
		Name:        req.Name,
		PlantedCrop: req.PlantedCrop,
	}
	if req.PlantingDate != "" {
		plantingDate, err := time.Parse("2006-01-02", req.PlantingDate)
		if err == nil {
			zone.PlantingDate = plantingDate
		}
	}

	if err := s.fieldRepository.CreateZone(ctx, zone); err != nil {
		return domain.ZoneResponse{}, err
	}

	return toZoneResponse(zone), nil
}

func (s *fieldService) DeleteZone(ctx context.Context, fieldID string, zoneID string, userID string) error {
	field, err := s.ownedField(ctx, fieldID, userID)
	if err != nil {
		return err
	}

	zone, err := s.fieldRepository.GetZoneByID(ctx, zoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrZoneNotFound
		}
		return err
	}
	if zone.FieldID != field.ID {
		return domain.ErrZoneNotFound
	}

	return s.fieldRepository.DeleteZone(ctx, zoneID)
}

func (s *fieldService) ownedField(ctx context.Context, id string, userID string) (*entities.Field, error) {
	field, err := s.fieldRepository.GetFieldByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, err
	}
	if field.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return field, nil
}

func toZoneResponse(zone *entities.Zone) domain.ZoneResponse {
	return domain.ZoneResponse{
		ID:           zone.ID.String(),
		Name:         zone.Name,
		PlantedCrop:  zone.PlantedCrop,
		PlantingDate: zone.PlantingDate,
	}
}

func toFieldResponse(field *entities.Field) domain.FieldResponse {
	response := domain.FieldResponse{
		ID:            field.ID.String(),
		Name:          field.Name,
		CropType:      field.CropType,
		AreaHectare:   field.AreaHectare,
		SoilType:      field.SoilType,
		IrrigationSrc: field.IrrigationSrc,
		CreatedAt:     field.CreatedAt,
	}
	for _, zone := range field.Zones {
		response.Zones = append(response.Zones, toZoneResponse(zone))
	}
	return response
}
