package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob periodically reports orders that have passed their due
// date without reaching a terminal state. The job only reads; chasing an
// overdue order stays a human decision.
type OverdueWatchJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueWatchJob creates a job that checks for overdue orders every minute.
func NewOverdueWatchJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the overdue watch job to run every minute.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueOrdersQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job failed to build query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", err)
			return
		}

		for _, row := range overdue {
			j.logger.WarnContext(ctx, "Order is past its due date",
				"order_no", row.OrderNo.String(),
				"status", row.Status.Label(),
				"due_date", row.DueDate.Format(time.DateOnly),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every minute)")
	return nil
}

// Stop stops the overdue watch job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}
