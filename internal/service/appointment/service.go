package appointment

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

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, error)
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	metrics     *metrics.Metrics
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		metrics:     m,
	}
}

// CreateAppointment validates the schedule fields and rejects dangling
// patient or doctor references before writing.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := validDate(req.Date); err != nil {
		return nil, apperrors.BadRequest("invalid appointment date", err)
	}
	if err := validTime(req.Time); err != nil {
		return nil, apperrors.BadRequest("invalid appointment time", err)
	}

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}
	if !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid appointment status %q", status), nil)
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

	appointment := &model.Appointment{
		ID:        uuid.New(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().
		Str("appointment_id", appointment.ID.String()).
		Str("patient_id", appointment.PatientID.String()).
		Str("doctor_id", appointment.DoctorID.String()).
		Msg("appointment created")
	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(err)
	}
	return appointment, nil
}

// UpdateAppointment merges only the provided fields. References it does
// not touch are not re-checked.
func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if err := validDate(*req.Date); err != nil {
			return nil, apperrors.BadRequest("invalid appointment date", err)
		}
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		if err := validTime(*req.Time); err != nil {
			return nil, apperrors.BadRequest("invalid appointment time", err)
		}
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.BadRequest(fmt.Sprintf("invalid appointment status %q", *req.Status), nil)
		}
		appointment.Status = *req.Status
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		s.observe("update", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.observe("update", "ok")

	log.Info().Str("appointment_id", id.String()).Msg("appointment updated")
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.observe("delete", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}
	s.observe("delete", "ok")

	log.Info().Str("appointment_id", id.String()).Msg("appointment deleted")
	return nil
}

func (s *Service) ListAppointments(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil {
		return appointments, nil
	}

	filtered := make([]*model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if filter.PatientID != uuid.Nil && a.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != uuid.Nil && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if filter.SearchTerm != "" {
			term := strings.ToLower(filter.SearchTerm)
			if !strings.Contains(strings.ToLower(a.Reason), term) &&
				!strings.Contains(strings.ToLower(a.Notes), term) {
				continue
			}
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("appointments", op, status).Inc()
}

func validDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("expected %s: %w", model.DateLayout, err)
	}
	return nil
}

func validTime(t string) error {
	if _, err := time.Parse(model.TimeLayout, t); err != nil {
		return fmt.Errorf("expected %s: %w", model.TimeLayout, err)
	}
	return nil
}
