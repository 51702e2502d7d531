package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/billing"
	"github.com/medcenter/portal-api/pkg/logger"
)

// BillingSweepWorker flips pending bills past their due date to
// overdue on a cron schedule.
type BillingSweepWorker struct {
	billing  billing.BillingService
	schedule string
	logger   *logger.Logger
	cron     *cron.Cron
}

func NewBillingSweepWorker(svc billing.BillingService, schedule string, l *logger.Logger) *BillingSweepWorker {
	return &BillingSweepWorker{
		billing:  svc,
		schedule: schedule,
		logger:   l.WithFields(map[string]interface{}{"worker": "billing_sweep"}),
	}
}

// Start runs one sweep immediately, then schedules recurring sweeps.
func (w *BillingSweepWorker) Start(ctx context.Context) error {
	w.sweep(ctx)

	c := cron.New()
	if _, err := c.AddFunc(w.schedule, func() { w.sweep(context.Background()) }); err != nil {
		return err
	}
	c.Start()
	w.cron = c

	w.logger.Info("billing sweep scheduled", "schedule", w.schedule)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (w *BillingSweepWorker) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
}

func (w *BillingSweepWorker) sweep(ctx context.Context) {
	today := time.Now().Format(model.DateLayout)

	updated, err := w.billing.MarkOverdue(ctx, today)
	if err != nil {
		w.logger.Error(err, "billing sweep failed")
		return
	}
	if updated > 0 {
		w.logger.Info("marked bills overdue", "bills", updated, "date", today)
	}
}
