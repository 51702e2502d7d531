package patient

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

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error)
}

type Service struct {
	repo    repository.PatientRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.PatientRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := validDate(req.DateOfBirth); err != nil {
		return nil, apperrors.BadRequest("invalid date of birth", err)
	}

	patient := &model.Patient{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		Avatar:           req.Avatar,
	}
	if patient.Allergies == nil {
		patient.Allergies = []string{}
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().Str("patient_id", patient.ID.String()).Str("name", patient.Name).Msg("patient created")
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

// UpdatePatient merges only the provided fields into the stored record.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DateOfBirth != nil {
		if err := validDate(*req.DateOfBirth); err != nil {
			return nil, apperrors.BadRequest("invalid date of birth", err)
		}
		patient.DateOfBirth = *req.DateOfBirth
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = *req.EmergencyContact
	}
	if req.BloodType != nil {
		patient.BloodType = *req.BloodType
	}
	if req.Allergies != nil {
		patient.Allergies = *req.Allergies
	}
	if req.Avatar != nil {
		patient.Avatar = *req.Avatar
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		s.observe("update", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.observe("update", "ok")

	log.Info().Str("patient_id", id.String()).Msg("patient updated")
	return patient, nil
}

// DeletePatient removes the patient only; appointments and bills that
// reference it are left in place.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.observe("delete", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("patient", err)
		}
		return apperrors.Internal(err)
	}
	s.observe("delete", "ok")

	log.Info().Str("patient_id", id.String()).Msg("patient deleted")
	return nil
}

func (s *Service) ListPatients(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil || filter.SearchTerm == "" {
		return patients, nil
	}

	term := strings.ToLower(filter.SearchTerm)
	filtered := make([]*model.Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Email), term) ||
			strings.Contains(strings.ToLower(p.Phone), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("patients", op, status).Inc()
}

func validDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("expected %s: %w", model.DateLayout, err)
	}
	return nil
}
