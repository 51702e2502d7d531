package billing

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

type BillingService interface {
	CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error)
	GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	UpdateBill(ctx context.Context, id uuid.UUID, req *model.UpdateBillRequest) (*model.Bill, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error
	ListBills(ctx context.Context, filter *model.BillFilter) ([]*model.Bill, error)
	MarkOverdue(ctx context.Context, today string) (int, error)
}

type Service struct {
	repo        repository.BillRepository
	patientRepo repository.PatientRepository
	metrics     *metrics.Metrics
}

func NewService(repo repository.BillRepository, patientRepo repository.PatientRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, patientRepo: patientRepo, metrics: m}
}

// CreateBill rejects dangling patient references; the appointment link
// is optional and advisory.
func (s *Service) CreateBill(ctx context.Context, req *model.CreateBillRequest) (*model.Bill, error) {
	if err := validDate(req.Date); err != nil {
		return nil, apperrors.BadRequest("invalid bill date", err)
	}
	if err := validDate(req.DueDate); err != nil {
		return nil, apperrors.BadRequest("invalid due date", err)
	}

	status := req.Status
	if status == "" {
		status = model.BillStatusPending
	}
	if !status.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid bill status %q", status), nil)
	}

	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.BadRequest("patient does not exist", err)
		}
		return nil, apperrors.Internal(err)
	}

	bill := &model.Bill{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Description:   req.Description,
		Status:        status,
		Date:          req.Date,
		DueDate:       req.DueDate,
	}

	if err := s.repo.Create(ctx, bill); err != nil {
		s.observe("create", "error")
		return nil, apperrors.Internal(err)
	}
	s.observe("create", "ok")

	log.Info().
		Str("bill_id", bill.ID.String()).
		Str("patient_id", bill.PatientID.String()).
		Float64("amount", bill.Amount).
		Msg("bill created")
	return bill, nil
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("bill", err)
		}
		return nil, apperrors.Internal(err)
	}
	return bill, nil
}

// UpdateBill merges only the provided fields into the stored record.
func (s *Service) UpdateBill(ctx context.Context, id uuid.UUID, req *model.UpdateBillRequest) (*model.Bill, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, apperrors.BadRequest("amount must not be negative", nil)
		}
		bill.Amount = *req.Amount
	}
	if req.Description != nil {
		bill.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.BadRequest(fmt.Sprintf("invalid bill status %q", *req.Status), nil)
		}
		bill.Status = *req.Status
	}
	if req.Date != nil {
		if err := validDate(*req.Date); err != nil {
			return nil, apperrors.BadRequest("invalid bill date", err)
		}
		bill.Date = *req.Date
	}
	if req.DueDate != nil {
		if err := validDate(*req.DueDate); err != nil {
			return nil, apperrors.BadRequest("invalid due date", err)
		}
		bill.DueDate = *req.DueDate
	}

	if err := s.repo.Update(ctx, bill); err != nil {
		s.observe("update", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("bill", err)
		}
		return nil, apperrors.Internal(err)
	}
	s.observe("update", "ok")

	log.Info().Str("bill_id", id.String()).Msg("bill updated")
	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.observe("delete", "error")
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("bill", err)
		}
		return apperrors.Internal(err)
	}
	s.observe("delete", "ok")

	log.Info().Str("bill_id", id.String()).Msg("bill deleted")
	return nil
}

func (s *Service) ListBills(ctx context.Context, filter *model.BillFilter) ([]*model.Bill, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if filter == nil {
		return bills, nil
	}

	filtered := make([]*model.Bill, 0, len(bills))
	for _, b := range bills {
		if filter.PatientID != uuid.Nil && b.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.SearchTerm != "" &&
			!strings.Contains(strings.ToLower(b.Description), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// MarkOverdue flips pending bills whose due date is before today to
// overdue and returns how many changed. Used by the billing sweep job.
func (s *Service) MarkOverdue(ctx context.Context, today string) (int, error) {
	if err := validDate(today); err != nil {
		return 0, apperrors.BadRequest("invalid date", err)
	}

	bills, err := s.repo.List(ctx)
	if err != nil {
		return 0, apperrors.Internal(err)
	}

	changed := 0
	for _, b := range bills {
		if b.Status != model.BillStatusPending {
			continue
		}
		if b.DueDate >= today {
			continue
		}
		b.Status = model.BillStatusOverdue
		if err := s.repo.Update(ctx, b); err != nil {
			return changed, apperrors.Internal(err)
		}
		changed++
	}

	if changed > 0 {
		log.Info().Int("count", changed).Msg("bills marked overdue")
	}
	return changed, nil
}

func (s *Service) observe(op, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StoreOperations.WithLabelValues("bills", op, status).Inc()
}

func validDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("expected %s: %w", model.DateLayout, err)
	}
	return nil
}
