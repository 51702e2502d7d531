package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

// MedicalRecordRepository is append-only: records document clinical
// history and are never edited or removed once written.
type MedicalRecordRepository struct {
	records *collection[model.MedicalRecord]
}

func NewMedicalRecordRepository() *MedicalRecordRepository {
	return &MedicalRecordRepository{records: newCollection[model.MedicalRecord]()}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	r.records.insert(record.ID, *record)
	return nil
}

func (r *MedicalRecordRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	record, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MedicalRecordRepository) List(ctx context.Context) ([]*model.MedicalRecord, error) {
	items := r.records.snapshot()
	records := make([]*model.MedicalRecord, len(items))
	for i := range items {
		records[i] = &items[i]
	}
	return records, nil
}
