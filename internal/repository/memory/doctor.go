package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

type DoctorRepository struct {
	records *collection[model.Doctor]
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{records: newCollection[model.Doctor]()}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	r.records.insert(doctor.ID, *doctor)
	return nil
}

func (r *DoctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	return r.records.replace(doctor.ID, *doctor)
}

func (r *DoctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.records.remove(id)
}

func (r *DoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	items := r.records.snapshot()
	doctors := make([]*model.Doctor, len(items))
	for i := range items {
		doctors[i] = &items[i]
	}
	return doctors, nil
}

func (r *DoctorRepository) Count() int {
	return r.records.size()
}
