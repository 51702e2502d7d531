package doctor

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

func newTestService() *Service {
	return NewService(memory.NewDoctorRepository(), nil)
}

func createDoctor(t *testing.T, svc *Service, name, specialization string) *model.Doctor {
	t.Helper()
	doctor, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:           name,
		Specialization: specialization,
		Email:          "doc@medicalcenter.com",
		Phone:          "+1 (555) 123-4567",
		Availability:   []string{"Monday", "Wednesday"},
		Rating:         4.8,
		Experience:     12,
	})
	require.NoError(t, err)
	return doctor
}

func TestCreateAndGetDoctor(t *testing.T) {
	svc := newTestService()

	doctor := createDoctor(t, svc, "Dr. Emily Smith", "Cardiology")
	assert.NotEqual(t, uuid.Nil, doctor.ID)

	got, err := svc.GetDoctor(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Emily Smith", got.Name)
	assert.Equal(t, "Cardiology", got.Specialization)
	assert.Equal(t, 4.8, got.Rating)
}

func TestGetDoctorNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetDoctor(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestUpdateDoctorMergesOnlyProvidedFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doctor := createDoctor(t, svc, "Dr. Emily Smith", "Cardiology")

	specialization := "Neurology"
	rating := 4.9
	updated, err := svc.UpdateDoctor(ctx, doctor.ID, &model.UpdateDoctorRequest{
		Specialization: &specialization,
		Rating:         &rating,
	})
	require.NoError(t, err)

	assert.Equal(t, "Neurology", updated.Specialization)
	assert.Equal(t, 4.9, updated.Rating)
	assert.Equal(t, "Dr. Emily Smith", updated.Name)
	assert.Equal(t, 12, updated.Experience)
	assert.Equal(t, []string{"Monday", "Wednesday"}, updated.Availability)
}

func TestDeleteDoctor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doctor := createDoctor(t, svc, "Dr. Emily Smith", "Cardiology")
	require.NoError(t, svc.DeleteDoctor(ctx, doctor.ID))

	err := svc.DeleteDoctor(ctx, doctor.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestListDoctorsSearch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	createDoctor(t, svc, "Dr. Emily Smith", "Cardiology")
	createDoctor(t, svc, "Dr. Michael Chen", "Pediatrics")
	createDoctor(t, svc, "Dr. Sarah Johnson", "Dermatology")

	all, err := svc.ListDoctors(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive match on name or specialization.
	byName, err := svc.ListDoctors(ctx, &model.DoctorFilter{SearchTerm: "chen"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Dr. Michael Chen", byName[0].Name)

	bySpec, err := svc.ListDoctors(ctx, &model.DoctorFilter{SearchTerm: "CARDIO"})
	require.NoError(t, err)
	require.Len(t, bySpec, 1)
	assert.Equal(t, "Cardiology", bySpec[0].Specialization)

	none, err := svc.ListDoctors(ctx, &model.DoctorFilter{SearchTerm: "oncology"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
