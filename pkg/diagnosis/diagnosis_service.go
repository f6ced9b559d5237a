package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"
	"Gardener-Assistant-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DiagnosisService interface {
		Diagnose(ctx context.Context, req domain.DiagnoseRequest) (domain.PlantIssueDiagnosis, error)
		UploadScan(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.UploadScanResponse, error)
		GetScanResult(ctx context.Context, scanID string, userID string) (domain.ScanResultResponse, error)
	}

	diagnosisService struct {
		diagnosisRepository DiagnosisRepository
		provider            Provider
		demoProvider        Provider
		s3                  storage.AwsS3
	}
)

// NewDiagnosisService wires the configured provider for named-disease
// diagnosis. provider may be nil (no model configured); the static demo
// provider then answers everything.
func NewDiagnosisService(diagnosisRepository DiagnosisRepository, provider Provider, s3 storage.AwsS3) DiagnosisService {
	return &diagnosisService{
		diagnosisRepository: diagnosisRepository,
		provider:            provider,
		demoProvider:        NewStaticProvider(),
		s3:                  s3,
	}
}

func (s *diagnosisService) Diagnose(ctx context.Context, req domain.DiagnoseRequest) (domain.PlantIssueDiagnosis, error) {
	if s.provider != nil {
		return s.provider.Diagnose(ctx, req.DiseaseName)
	}
	return s.demoProvider.Diagnose(ctx, req.DiseaseName)
}

func (s *diagnosisService) UploadScan(ctx context.Context, req domain.UploadScanRequest, userID string) (domain.UploadScanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadScanResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("plant-scan-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "plant-scans", storage.AllowImage...)
	if err != nil {
		return domain.UploadScanResponse{}, err
	}

	scan := &entities.PlantScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
		Status:   "Pending",
	}
	if err := s.diagnosisRepository.CreatePlantScan(ctx, scan); err != nil {
		return domain.UploadScanResponse{}, err
	}

	// On-device classification never shipped; scans resolve to the demo
	// record, matching the app's offline mode.
	diag, err := s.demoProvider.Diagnose(ctx, "")
	if err != nil {
		scan.Status = "Failed"
		_ = s.diagnosisRepository.UpdatePlantScan(ctx, scan)
		return domain.UploadScanResponse{}, err
	}

	resultJSON, err := json.Marshal(diag)
	if err != nil {
		scan.Status = "Failed"
		_ = s.diagnosisRepository.UpdatePlantScan(ctx, scan)
		return domain.UploadScanResponse{}, err
	}

	scan.Status = "Processed"
	scan.DiseaseName = diag.Name
	scan.ResultJSON = string(resultJSON)
	if err := s.diagnosisRepository.UpdatePlantScan(ctx, scan); err != nil {
		return domain.UploadScanResponse{}, err
	}

	return domain.UploadScanResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
	}, nil
}

func (s *diagnosisService) GetScanResult(ctx context.Context, scanID string, userID string) (domain.ScanResultResponse, error) {
	scan, err := s.diagnosisRepository.GetPlantScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResultResponse{}, domain.ErrScanNotFound
		}
		return domain.ScanResultResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ScanResultResponse{}, domain.ErrUserNotAllowed
	}

	res := domain.ScanResultResponse{
		ScanID:      scan.ID.String(),
		Status:      scan.Status,
		DiseaseName: scan.DiseaseName,
	}

	if scan.ResultJSON != "" {
		var diag domain.PlantIssueDiagnosis
		if err := json.Unmarshal([]byte(scan.ResultJSON), &diag); err == nil {
			res.Diagnosis = &diag
		}
	}

	return res, nil
}
