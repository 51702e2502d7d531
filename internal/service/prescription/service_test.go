package prescription

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository/memory"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
)

type fixture struct {
	svc           *Service
	patientID     uuid.UUID
	doctorID      uuid.UUID
	appointmentID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := memory.NewPatientRepository()
	doctors := memory.NewDoctorRepository()
	appointments := memory.NewAppointmentRepository()

	f := &fixture{
		patientID:     uuid.New(),
		doctorID:      uuid.New(),
		appointmentID: uuid.New(),
	}
	require.NoError(t, patients.Create(ctx, &model.Patient{ID: f.patientID, Name: "John Smith"}))
	require.NoError(t, doctors.Create(ctx, &model.Doctor{ID: f.doctorID, Name: "Dr. Michael Chen"}))
	require.NoError(t, appointments.Create(ctx, &model.Appointment{
		ID: f.appointmentID, PatientID: f.patientID, DoctorID: f.doctorID,
		Date: "2024-03-15", Time: "10:00", Status: model.AppointmentStatusCompleted,
	}))

	f.svc = NewService(memory.NewPrescriptionRepository(), patients, doctors, appointments, nil)
	return f
}

func (f *fixture) request() *model.CreatePrescriptionRequest {
	return &model.CreatePrescriptionRequest{
		AppointmentID: f.appointmentID,
		PatientID:     f.patientID,
		DoctorID:      f.doctorID,
		Medications: []model.Medication{
			{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "30 days"},
		},
		Instructions: "Take with food",
		Date:         "2024-03-15",
	}
}

func TestCreatePrescription(t *testing.T) {
	f := newFixture(t)

	prescription, err := f.svc.CreatePrescription(context.Background(), f.request())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, prescription.ID)
	require.Len(t, prescription.Medications, 1)
	assert.Equal(t, "Lisinopril", prescription.Medications[0].Name)
}

func TestCreatePrescriptionDanglingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	badRequest := func(err error, fragment string) {
		t.Helper()
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, fragment)
	}

	req := f.request()
	req.PatientID = uuid.New()
	_, err := f.svc.CreatePrescription(ctx, req)
	badRequest(err, "patient")

	req = f.request()
	req.DoctorID = uuid.New()
	_, err = f.svc.CreatePrescription(ctx, req)
	badRequest(err, "doctor")

	req = f.request()
	req.AppointmentID = uuid.New()
	_, err = f.svc.CreatePrescription(ctx, req)
	badRequest(err, "appointment")
}

func TestListPrescriptionsScoping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreatePrescription(ctx, f.request())
	require.NoError(t, err)

	byPatient, err := f.svc.ListPrescriptions(ctx, &model.PrescriptionFilter{PatientID: f.patientID})
	require.NoError(t, err)
	assert.Len(t, byPatient, 1)

	byOther, err := f.svc.ListPrescriptions(ctx, &model.PrescriptionFilter{DoctorID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, byOther)
}

func TestGetPrescriptionNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetPrescription(context.Background(), uuid.New())
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
