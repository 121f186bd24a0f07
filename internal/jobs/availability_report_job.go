package jobs

import (
	"context"
	"log/slog"

	"pickpoint/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AvailabilityReportJob periodically reports locker availability. Runs every
// minute and logs the count of open lockers; a sudden drop to zero in the
// logs is the operational signal that the locker network feed is broken.
type AvailabilityReportJob struct {
	handler queries.GetOpenPostautomatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityReportJob creates a job reporting open-locker counts.
func NewAvailabilityReportJob(
	handler queries.GetOpenPostautomatsQueryHandler,
	logger *slog.Logger,
) *AvailabilityReportJob {
	return &AvailabilityReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "availability_report_job"),
	}
}

// Start begins the availability report job to run every minute.
func (j *AvailabilityReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		lockers, err := j.handler.Handle(ctx, queries.NewGetOpenPostautomatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Locker availability", "open_lockers", len(lockers))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability report job started (running every minute)")
	return nil
}

// Stop stops the availability report job.
func (j *AvailabilityReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability report job stopped")
}
