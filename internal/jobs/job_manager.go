package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	busMonitorJob *BusMonitorJob
}

// NewJobManager creates a job manager. busMonitorSchedule is a robfig/cron
// expression; empty means DefaultBusMonitorSchedule.
func NewJobManager(counter SubscriptionCounter, busMonitorSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		busMonitorJob: NewBusMonitorJob(counter, busMonitorSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.busMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start bus monitor job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.busMonitorJob.Stop()
}
