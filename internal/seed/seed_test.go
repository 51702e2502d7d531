package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository/memory"
)

func TestLoadPopulatesAllCollections(t *testing.T) {
	ctx := context.Background()

	doctors := memory.NewDoctorRepository()
	patients := memory.NewPatientRepository()
	appointments := memory.NewAppointmentRepository()
	bills := memory.NewBillRepository()
	records := memory.NewMedicalRecordRepository()
	prescriptions := memory.NewPrescriptionRepository()

	require.NoError(t, Load(ctx, Repositories{
		Doctors:       doctors,
		Patients:      patients,
		Appointments:  appointments,
		Bills:         bills,
		Records:       records,
		Prescriptions: prescriptions,
	}))

	assert.Equal(t, len(Doctors()), doctors.Count())
	assert.Equal(t, len(Patients()), patients.Count())
	assert.Equal(t, len(Appointments()), appointments.Count())
	assert.Equal(t, len(Bills()), bills.Count())

	listed, err := records.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, len(MedicalRecords()))
}

func TestCredentialsCoverEveryRole(t *testing.T) {
	credentials := Credentials()

	roles := make(map[model.Role]bool)
	for _, c := range credentials {
		roles[c.Role] = true
		assert.NotEmpty(t, c.Email)
		assert.NotEmpty(t, c.Password)
	}
	assert.True(t, roles[model.RoleAdmin])
	assert.True(t, roles[model.RoleDoctor])
	assert.True(t, roles[model.RolePatient])
}

// The doctor and patient logins must point at records that exist in the
// store, otherwise their scoped dashboards would come up empty.
func TestCredentialsReferenceSeededRecords(t *testing.T) {
	doctorIDs := make(map[string]bool)
	for _, d := range Doctors() {
		doctorIDs[d.ID.String()] = true
	}
	patientIDs := make(map[string]bool)
	for _, p := range Patients() {
		patientIDs[p.ID.String()] = true
	}

	for _, c := range Credentials() {
		switch c.Role {
		case model.RoleDoctor:
			assert.True(t, doctorIDs[c.ID.String()], "doctor credential %s has no record", c.Email)
		case model.RolePatient:
			assert.True(t, patientIDs[c.ID.String()], "patient credential %s has no record", c.Email)
		}
	}
}

func TestAppointmentsReferenceSeededRecords(t *testing.T) {
	doctorIDs := make(map[string]bool)
	for _, d := range Doctors() {
		doctorIDs[d.ID.String()] = true
	}
	patientIDs := make(map[string]bool)
	for _, p := range Patients() {
		patientIDs[p.ID.String()] = true
	}

	for _, a := range Appointments() {
		assert.True(t, doctorIDs[a.DoctorID.String()], "appointment %s has dangling doctor", a.ID)
		assert.True(t, patientIDs[a.PatientID.String()], "appointment %s has dangling patient", a.ID)
		assert.True(t, a.Status.Valid())
	}
}
