package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddField    = "field added successfully"
	MessageSuccessUpdateField = "field updated successfully"
	MessageSuccessDeleteField = "field deleted successfully"
	MessageSuccessGetFields   = "fields retrieved successfully"
	MessageSuccessAddZone     = "zone added successfully"
	MessageSuccessDeleteZone  = "zone deleted successfully"

	MessageFailedAddField    = "failed to add field"
	MessageFailedUpdateField = "failed to update field"
	MessageFailedDeleteField = "failed to delete field"
	MessageFailedGetFields   = "failed to retrieve fields"
	MessageFailedAddZone     = "failed to add zone"
	MessageFailedDeleteZone  = "failed to delete zone"

	ErrFieldNotFound = errors.New("field not found")
	ErrZoneNotFound  = errors.New("zone not found")
)

type (
	AddFieldRequest struct {
		Name          string  `json:"name" validate:"required"`
		CropType      string  `json:"crop_type" validate:"required"`
		AreaHectare   float64 `json:"area_hectare" validate:"required,gt=0"`
		SoilType      string  `json:"soil_type" validate:"omitempty,oneof=sand loam clay"`
		IrrigationSrc string  `json:"irrigation_src" validate:"omitempty,oneof=well surface rain none"`
	}

	UpdateFieldRequest struct {
		Name          string  `json:"name" validate:"omitempty"`
		CropType      string  `json:"crop_type" validate:"omitempty"`
		AreaHectare   float64 `json:"area_hectare" validate:"omitempty,gt=0"`
		SoilType      string  `json:"soil_type" validate:"omitempty,oneof=sand loam clay"`
		IrrigationSrc string  `json:"irrigation_src" validate:"omitempty,oneof=well surface rain none"`
	}

	AddZoneRequest struct {
		Name         string `json:"name" validate:"required"`
		PlantedCrop  string `json:"planted_crop" validate:"omitempty"`
		PlantingDate string `json:"planting_date" validate:"omitempty,datetime=2006-01-02"`
	}

	ZoneResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		PlantedCrop  string    `json:"planted_crop,omitempty"`
		PlantingDate time.Time `json:"planting_date,omitempty"`
	}

	FieldResponse struct {
		ID            string         `json:"id"`
		Name          string         `json:"name"`
		CropType      string         `json:"crop_type"`
		AreaHectare   float64        `json:"area_hectare"`
		SoilType      string         `json:"soil_type,omitempty"`
		IrrigationSrc string         `json:"irrigation_src,omitempty"`
		Zones         []ZoneResponse `json:"zones,omitempty"`
		CreatedAt     time.Time      `json:"created_at"`
	}
)
