package billing

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

func newTestService(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	patients := memory.NewPatientRepository()
	patient := &model.Patient{ID: uuid.New(), Name: "John Smith", Email: "john@example.com"}
	require.NoError(t, patients.Create(ctx, patient))

	return NewService(memory.NewBillRepository(), patients, nil), patient.ID
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	bill, err := svc.CreateBill(ctx, &model.CreateBillRequest{
		PatientID:   patientID,
		Amount:      250,
		Description: "General Consultation",
		Date:        "2024-01-10",
		DueDate:     "2024-02-10",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bill.ID)
	assert.Equal(t, model.BillStatusPending, bill.Status)

	got, err := svc.GetBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "General Consultation", got.Description)
}

func TestCreateBillUnknownPatient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateBill(ctx, &model.CreateBillRequest{
		PatientID:   uuid.New(),
		Amount:      100,
		Description: "Lab Tests",
		Date:        "2024-01-10",
		DueDate:     "2024-02-10",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestCreateBillInvalidDate(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	_, err := svc.CreateBill(ctx, &model.CreateBillRequest{
		PatientID:   patientID,
		Amount:      100,
		Description: "Lab Tests",
		Date:        "January 10th",
		DueDate:     "2024-02-10",
	})
	assert.Error(t, err)
}

func TestUpdateBillMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	bill, err := svc.CreateBill(ctx, &model.CreateBillRequest{
		PatientID:   patientID,
		Amount:      250,
		Description: "General Consultation",
		Date:        "2024-01-10",
		DueDate:     "2024-02-10",
	})
	require.NoError(t, err)

	paid := model.BillStatusPaid
	updated, err := svc.UpdateBill(ctx, bill.ID, &model.UpdateBillRequest{Status: &paid})
	require.NoError(t, err)

	assert.Equal(t, model.BillStatusPaid, updated.Status)
	assert.Equal(t, 250.0, updated.Amount)
	assert.Equal(t, "General Consultation", updated.Description)
	assert.Equal(t, "2024-02-10", updated.DueDate)
}

func TestDeleteBill(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	bill, err := svc.CreateBill(ctx, &model.CreateBillRequest{
		PatientID:   patientID,
		Amount:      100,
		Description: "X-Ray",
		Date:        "2024-01-10",
		DueDate:     "2024-02-10",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBill(ctx, bill.ID))

	var appErr *apperrors.AppError
	err = svc.DeleteBill(ctx, bill.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestListBillsFilters(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	for _, b := range []struct {
		desc   string
		status model.BillStatus
	}{
		{"General Consultation", model.BillStatusPending},
		{"Lab Tests", model.BillStatusPaid},
		{"X-Ray Imaging", model.BillStatusPending},
	} {
		_, err := svc.CreateBill(ctx, &model.CreateBillRequest{
			PatientID:   patientID,
			Amount:      100,
			Description: b.desc,
			Status:      b.status,
			Date:        "2024-01-10",
			DueDate:     "2024-02-10",
		})
		require.NoError(t, err)
	}

	pending, err := svc.ListBills(ctx, &model.BillFilter{Status: model.BillStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	lab, err := svc.ListBills(ctx, &model.BillFilter{SearchTerm: "lab"})
	require.NoError(t, err)
	require.Len(t, lab, 1)
	assert.Equal(t, "Lab Tests", lab[0].Description)

	none, err := svc.ListBills(ctx, &model.BillFilter{PatientID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMarkOverdue(t *testing.T) {
	ctx := context.Background()
	svc, patientID := newTestService(t)

	mk := func(due string, status model.BillStatus) uuid.UUID {
		bill, err := svc.CreateBill(ctx, &model.CreateBillRequest{
			PatientID:   patientID,
			Amount:      100,
			Description: "visit",
			Status:      status,
			Date:        "2024-01-01",
			DueDate:     due,
		})
		require.NoError(t, err)
		return bill.ID
	}

	pastPending := mk("2024-02-01", model.BillStatusPending)
	pastPaid := mk("2024-02-01", model.BillStatusPaid)
	dueToday := mk("2024-03-15", model.BillStatusPending)
	future := mk("2024-04-01", model.BillStatusPending)

	changed, err := svc.MarkOverdue(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	assertStatus := func(id uuid.UUID, want model.BillStatus) {
		bill, err := svc.GetBill(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, bill.Status)
	}
	assertStatus(pastPending, model.BillStatusOverdue)
	assertStatus(pastPaid, model.BillStatusPaid)
	assertStatus(dueToday, model.BillStatusPending)
	assertStatus(future, model.BillStatusPending)

	// A second sweep finds nothing left to flip.
	changed, err = svc.MarkOverdue(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestMarkOverdueRejectsBadDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.MarkOverdue(ctx, "15/03/2024")
	assert.Error(t, err)
}
