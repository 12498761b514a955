package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs the oldest order in every status.
// Orders stuck in PROCESSING or IN_DELIVERY for too long show up here
// first, so the report doubles as a cheap backlog check.
type OrderReportJob struct {
	handler queries.GetOldestOrderPerStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job reporting the order backlog.
func NewOrderReportJob(handler queries.GetOldestOrderPerStatusQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOldestOrderPerStatusQuery()

		oldest, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		for status, o := range oldest {
			if o == nil {
				continue
			}
			j.logger.InfoContext(ctx, "Oldest order in status",
				"status", status.String(),
				"order_id", o.ID().String(),
				"ordered_at", o.OrderedAt(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
