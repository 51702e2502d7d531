package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

// PrescriptionRepository is append-only, like medical records.
type PrescriptionRepository struct {
	records *collection[model.Prescription]
}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{records: newCollection[model.Prescription]()}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	r.records.insert(prescription.ID, *prescription)
	return nil
}

func (r *PrescriptionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	prescription, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	items := r.records.snapshot()
	prescriptions := make([]*model.Prescription, len(items))
	for i := range items {
		prescriptions[i] = &items[i]
	}
	return prescriptions, nil
}
