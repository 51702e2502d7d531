package doctor

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/metrics"
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListDoctors(ctx context.Context, filter *model.DoctorFilter) ([]*model.Doctor, error)
}

type Service struct {
	repo    repository.DoctorRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.DoctorRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:             uuid.New(),
		Name:           req.Name,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
		Availability:   req.Availability,
		Rating:         req.Rating,
		Experience:     req.Experience,
		Avatar:         req.Avatar,
	}
	if doctor.Availability == nil {
		doctor.Availability = []string{}
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().Str("doctor_id", doctor.ID.String()).Str("name", doctor.Name).Msg("doctor created")
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

// UpdateDoctor merges only the provided fields into the stored record.
func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Availability != nil {
		doctor.Availability = *req.Availability
	}
	if req.Rating != nil {
		doctor.Rating = *req.Rating
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Avatar != nil {
		doctor.Avatar = *req.Avatar
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		s.observe("update", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.observe("update", "ok")

	log.Info().Str("doctor_id", id.String()).Msg("doctor updated")
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.observe("delete", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("doctor", err)
		}
		return apperrors.Internal(err)
	}
	s.observe("delete", "ok")

	log.Info().Str("doctor_id", id.String()).Msg("doctor deleted")
	return nil
}

func (s *Service) ListDoctors(ctx context.Context, filter *model.DoctorFilter) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil || filter.SearchTerm == "" {
		return doctors, nil
	}

	term := strings.ToLower(filter.SearchTerm)
	filtered := make([]*model.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Specialization), term) ||
			strings.Contains(strings.ToLower(d.Email), term) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("doctors", op, status).Inc()
}
