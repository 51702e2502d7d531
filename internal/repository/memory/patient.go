package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

type PatientRepository struct {
	records *collection[model.Patient]
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{records: newCollection[model.Patient]()}
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.records.insert(patient.ID, *patient)
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	return r.records.replace(patient.ID, *patient)
}

func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.records.remove(id)
}

func (r *PatientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	items := r.records.snapshot()
	patients := make([]*model.Patient, len(items))
	for i := range items {
		patients[i] = &items[i]
	}
	return patients, nil
}

func (r *PatientRepository) Count() int {
	return r.records.size()
}
