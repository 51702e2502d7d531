package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

type AppointmentRepository struct {
	records *collection[model.Appointment]
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{records: newCollection[model.Appointment]()}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.records.insert(appointment.ID, *appointment)
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	return r.records.replace(appointment.ID, *appointment)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.records.remove(id)
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	items := r.records.snapshot()
	appointments := make([]*model.Appointment, len(items))
	for i := range items {
		appointments[i] = &items[i]
	}
	return appointments, nil
}

func (r *AppointmentRepository) Count() int {
	return r.records.size()
}
