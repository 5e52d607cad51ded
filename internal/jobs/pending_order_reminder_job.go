package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// pendingReminderSchedule fires every five minutes.
const pendingReminderSchedule = "0 */5 * * * *"

// PendingOrderReminderJob periodically re-notifies the carrier side about
// orders still waiting to be accepted, so a request created while the app
// sat in the background is not missed.
type PendingOrderReminderJob struct {
	getAllOrders queries.GetAllOrdersQueryHandler
	notifier     ports.Notifier
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job.
func NewPendingOrderReminderJob(
	getAllOrders queries.GetAllOrdersQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		getAllOrders: getAllOrders,
		notifier:     notifier,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "pending_order_reminder_job"),
	}
}

// Start schedules the reminder to run every five minutes.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc(pendingReminderSchedule, func() {
		ctx := context.Background()

		orders, err := j.getAllOrders.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder failed", "error", err)
			return
		}

		pending := 0
		for _, o := range orders {
			if o.Status == order.Pending {
				pending++
			}
		}
		if pending == 0 {
			return
		}

		_ = j.notifier.Notify(ctx,
			"Deliveries waiting",
			fmt.Sprintf("%d order(s) are still waiting for a carrier.", pending),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started (running every five minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}
