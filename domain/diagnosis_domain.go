package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessDiagnose      = "diagnosis generated successfully"
	MessageSuccessUploadScan    = "plant photo uploaded successfully"
	MessageSuccessGetScanResult = "scan result retrieved successfully"

	MessageFailedDiagnose      = "failed to generate diagnosis"
	MessageFailedUploadScan    = "failed to upload plant photo"
	MessageFailedGetScanResult = "failed to retrieve scan result"

	ErrDiseaseNameRequired    = errors.New("disease name is required")
	ErrResponseNotParseable   = errors.New("diagnosis response not parseable")
	ErrScanNotFound           = errors.New("plant scan not found")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

// Severity and difficulty are closed enumerations; effectiveness is 0-100.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	IssueDisease  = "disease"
	IssuePest     = "pest"
	IssueNutrient = "nutrient"
	IssueWatering = "watering"
)

type (
	RecommendedProduct struct {
		ProductID string  `json:"product_id,omitempty"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		InStock   bool    `json:"in_stock"`
	}

	OrganicRemedy struct {
		Name          string   `json:"name"`
		Difficulty    string   `json:"difficulty"` // easy|medium|hard
		PrepTime      string   `json:"prep_time"`
		Ingredients   []string `json:"ingredients"`
		Instructions  []string `json:"instructions"`
		Effectiveness int      `json:"effectiveness"` // 0-100
		Tips          string   `json:"tips,omitempty"`
	}

	PlantIssueDiagnosis struct {
		Kind        string               `json:"kind"` // disease|pest|nutrient|watering
		Name        string               `json:"name"`
		Severity    string               `json:"severity"` // low|medium|high
		Description string               `json:"description"`
		Treatment   string               `json:"treatment"`
		Products    []RecommendedProduct `json:"products"`
		Remedies    []OrganicRemedy      `json:"remedies"`
	}

	DiagnoseRequest struct {
		DiseaseName string `json:"disease_name" validate:"required"`
	}

	// RemedyReport mirrors the JSON document the text-generation model is
	// instructed to return for a named disease.
	RemedyReport struct {
		Summary  string `json:"Summary"`
		Remedies struct {
			Diagnosis struct {
				Disease               string `json:"Disease"`
				Pathogen              string `json:"Pathogen"`
				Hosts                 string `json:"Hosts"`
				Symptoms              string `json:"Symptoms"`
				Lifecycle             string `json:"Lifecycle"`
				EnvironmentalTriggers string `json:"Environmental Triggers"`
			} `json:"Diagnosis"`
			DetailedRemedialPlan map[string]string `json:"Detailed Remedial Plan"`
		} `json:"remedies"`
		Product struct {
			CuratedProductList  []string `json:"Curated Product List"`
			ApplicationProtocol string   `json:"Application Protocol"`
		} `json:"product"`
	}

	UploadScanRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadScanResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ScanResultResponse struct {
		ScanID      string               `json:"scan_id"`
		Status      string               `json:"status"`
		DiseaseName string               `json:"disease_name,omitempty"`
		Diagnosis   *PlantIssueDiagnosis `json:"diagnosis,omitempty"`
	}
)
