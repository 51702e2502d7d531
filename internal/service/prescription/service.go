package prescription

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/metrics"
)

type PrescriptionService interface {
	CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error)
	GetPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error)
	ListPrescriptions(ctx context.Context, filter *model.PrescriptionFilter) ([]*model.Prescription, error)
}

type Service struct {
	repo            repository.PrescriptionRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	metrics         *metrics.Metrics
}

func NewService(repo repository.PrescriptionRepository, patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository, appointmentRepo repository.AppointmentRepository,
	m *metrics.Metrics) *Service {
	return &Service{
		repo:            repo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		metrics:         m,
	}
}

func (s *Service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return nil, apperrors.BadRequest("invalid prescription date", err)
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
	if _, err := s.appointmentRepo.Get(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("appointment does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}

	prescription := &model.Prescription{
		ID:            uuid.New(),
		AppointmentID: req.AppointmentID,
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Medications:   req.Medications,
		Instructions:  req.Instructions,
		Date:          req.Date,
	}

	if err := s.repo.Create(ctx, prescription); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().
		Str("prescription_id", prescription.ID.String()).
		Str("patient_id", prescription.PatientID.String()).
		Str("doctor_id", prescription.DoctorID.String()).
		Msg("prescription created")
	return prescription, nil
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	prescription, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("prescription", err)
		}
		return nil, apperrors.Internal(err)
	}
	return prescription, nil
}

func (s *Service) ListPrescriptions(ctx context.Context, filter *model.PrescriptionFilter) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil {
		return prescriptions, nil
	}

	filtered := make([]*model.Prescription, 0, len(prescriptions))
	for _, p := range prescriptions {
		if filter.PatientID != uuid.Nil && p.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != uuid.Nil && p.DoctorID != filter.DoctorID {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("prescriptions", op, status).Inc()
}
