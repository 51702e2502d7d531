// Package dashboard derives the per-role summary projections the
// dashboards render: counts, revenue and short lists computed from
// Entity Store snapshots. It never mutates the store.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
)

const (
	recentAppointmentLimit = 5
	pendingBillLimit       = 3
)

// AdminStats is the admin dashboard projection.
type AdminStats struct {
	TotalPatients      int                  `json:"total_patients"`
	TotalDoctors       int                  `json:"total_doctors"`
	AppointmentsToday  int                  `json:"appointments_today"`
	Revenue            float64              `json:"revenue"`
	RecentAppointments []*model.Appointment `json:"recent_appointments"`
	PendingBills       []*model.Bill        `json:"pending_bills"`
}

// DoctorStats is the doctor dashboard projection, scoped to one doctor.
type DoctorStats struct {
	AppointmentsToday    int                  `json:"appointments_today"`
	UpcomingAppointments []*model.Appointment `json:"upcoming_appointments"`
	CompletedToday       int                  `json:"completed_today"`
	PendingReviews       int                  `json:"pending_reviews"`
	PatientCount         int                  `json:"patient_count"`
	TodaySchedule        []*model.Appointment `json:"today_schedule"`
}

// PatientStats is the patient dashboard projection, scoped to one patient.
type PatientStats struct {
	UpcomingAppointments []*model.Appointment `json:"upcoming_appointments"`
	PendingBillCount     int                  `json:"pending_bill_count"`
	PendingBillTotal     float64              `json:"pending_bill_total"`
}

type Service struct {
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	billRepo        repository.BillRepository

	// now is swappable for tests
	now func() time.Time
}

func NewService(doctorRepo repository.DoctorRepository, patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository, billRepo repository.BillRepository) *Service {
	return &Service{
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
		now:             time.Now,
	}
}

// WithClock overrides the wall clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	today := s.today()
	stats := &AdminStats{
		TotalPatients: len(patients),
		TotalDoctors:  len(doctors),
		PendingBills:  []*model.Bill{},
	}

	for _, a := range appointments {
		if a.Date == today {
			stats.AppointmentsToday++
		}
	}

	for _, b := range bills {
		switch b.Status {
		case model.BillStatusPaid:
			stats.Revenue += b.Amount
		case model.BillStatusPending:
			if len(stats.PendingBills) < pendingBillLimit {
				stats.PendingBills = append(stats.PendingBills, b)
			}
		}
	}

	// Most recent first
	stats.RecentAppointments = []*model.Appointment{}
	for i := len(appointments) - 1; i >= 0 && len(stats.RecentAppointments) < recentAppointmentLimit; i-- {
		stats.RecentAppointments = append(stats.RecentAppointments, appointments[i])
	}

	return stats, nil
}

func (s *Service) DoctorStats(ctx context.Context, doctorID uuid.UUID) (*DoctorStats, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	today := s.today()
	stats := &DoctorStats{
		UpcomingAppointments: []*model.Appointment{},
		TodaySchedule:        []*model.Appointment{},
	}
	seen := make(map[uuid.UUID]bool)

	for _, a := range appointments {
		if a.DoctorID != doctorID {
			continue
		}
		if !seen[a.PatientID] {
			seen[a.PatientID] = true
			stats.PatientCount++
		}
		if a.Date == today {
			stats.AppointmentsToday++
			stats.TodaySchedule = append(stats.TodaySchedule, a)
			if a.Status == model.AppointmentStatusCompleted {
				stats.CompletedToday++
			}
		}
		if a.Date > today && a.Status == model.AppointmentStatusScheduled {
			stats.UpcomingAppointments = append(stats.UpcomingAppointments, a)
		}
		if a.Status == model.AppointmentStatusCompleted && a.Notes == "" {
			stats.PendingReviews++
		}
	}

	return stats, nil
}

func (s *Service) PatientStats(ctx context.Context, patientID uuid.UUID) (*PatientStats, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	today := s.today()
	stats := &PatientStats{
		UpcomingAppointments: []*model.Appointment{},
	}

	for _, a := range appointments {
		if a.PatientID != patientID {
			continue
		}
		if a.Date >= today && a.Status == model.AppointmentStatusScheduled {
			stats.UpcomingAppointments = append(stats.UpcomingAppointments, a)
		}
	}

	for _, b := range bills {
		if b.PatientID != patientID || b.Status != model.BillStatusPending {
			continue
		}
		stats.PendingBillCount++
		stats.PendingBillTotal += b.Amount
	}

	return stats, nil
}

func (s *Service) today() string {
	return s.now().Format(model.DateLayout)
}
