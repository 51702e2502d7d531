package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
)

type BillRepository struct {
	records *collection[model.Bill]
}

func NewBillRepository() *BillRepository {
	return &BillRepository{records: newCollection[model.Bill]()}
}

func (r *BillRepository) Create(ctx context.Context, bill *model.Bill) error {
	r.records.insert(bill.ID, *bill)
	return nil
}

func (r *BillRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	bill, err := r.records.get(id)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillRepository) Update(ctx context.Context, bill *model.Bill) error {
	return r.records.replace(bill.ID, *bill)
}

func (r *BillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.records.remove(id)
}

func (r *BillRepository) List(ctx context.Context) ([]*model.Bill, error) {
	items := r.records.snapshot()
	bills := make([]*model.Bill, len(items))
	for i := range items {
		bills[i] = &items[i]
	}
	return bills, nil
}

func (r *BillRepository) Count() int {
	return r.records.size()
}
