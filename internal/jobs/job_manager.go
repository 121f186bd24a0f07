package jobs

import (
	"fmt"
	"log/slog"

	"pickpoint/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	availabilityReportJob *AvailabilityReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getOpenPostautomatsHandler queries.GetOpenPostautomatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		availabilityReportJob: NewAvailabilityReportJob(getOpenPostautomatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.availabilityReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start availability report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.availabilityReportJob.Stop()
}
