package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/metrics"
)

type RecordService interface {
	CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error)
	ListRecords(ctx context.Context, filter *model.MedicalRecordFilter) ([]*model.MedicalRecord, error)
}

// Service manages the append-only medical history.
type Service struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	metrics     *metrics.Metrics
}

func NewService(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		metrics:     m,
	}
}

func (s *Service) CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, apperrors.BadRequest("invalid record date", err)
	}
	if !req.Type.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid record type %q", req.Type), nil)
	}

	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("patient does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}
	if _, err := s.doctorRepo.Get(ctx, req.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("doctor does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}

	record := &model.MedicalRecord{
		ID:          uuid.New(),
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Attachments: req.Attachments,
	}
	if record.Attachments == nil {
		record.Attachments = []string{}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().
		Str("record_id", record.ID.String()).
		Str("patient_id", record.PatientID.String()).
		Str("type", string(record.Type)).
		Msg("medical record created")
	return record, nil
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("medical record", err)
		}
		return nil, apperrors.Internal(err)
	}
	return record, nil
}

// ListRecords filters by patient and by free text over title and
// description, the way the records screen searches.
func (s *Service) ListRecords(ctx context.Context, filter *model.MedicalRecordFilter) ([]*model.MedicalRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil {
		return records, nil
	}

	filtered := make([]*model.MedicalRecord, 0, len(records))
	for _, r := range records {
		if filter.PatientID != uuid.Nil && r.PatientID != filter.PatientID {
			continue
		}
		if filter.SearchTerm != "" {
			term := strings.ToLower(filter.SearchTerm)
			if !strings.Contains(strings.ToLower(r.Title), term) &&
				!strings.Contains(strings.ToLower(r.Description), term) {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("medical_records", op, status).Inc()
}
