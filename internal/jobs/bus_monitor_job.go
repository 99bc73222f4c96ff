package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"

	"github.com/robfig/cron/v3"
)

// DefaultBusMonitorSchedule runs the monitor once a minute.
const DefaultBusMonitorSchedule = "@every 1m"

// SubscriptionCounter reports live subscriptions per topic.
type SubscriptionCounter interface {
	SubscriberCount(topic pubsub.Topic) int
}

// BusMonitorJob periodically logs how many live subscriptions each order
// topic has.
type BusMonitorJob struct {
	counter  SubscriptionCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBusMonitorJob(counter SubscriptionCounter, schedule string, logger *slog.Logger) *BusMonitorJob {
	if schedule == "" {
		schedule = DefaultBusMonitorSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BusMonitorJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "bus_monitor_job"),
	}
}

// Start schedules the job. An unparsable schedule is returned as an error.
func (j *BusMonitorJob) Start() error {
	if _, err := j.cron.AddJob(j.schedule, j); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bus monitor job started", "schedule", j.schedule)
	return nil
}

// Run takes one sample. It implements cron.Job.
func (j *BusMonitorJob) Run() {
	ctx := context.Background()

	attrs := make([]any, 0, 2*len(events.Topics()))
	total := 0
	for _, topic := range events.Topics() {
		n := j.counter.SubscriberCount(topic)
		total += n
		attrs = append(attrs, string(topic), n)
	}

	j.logger.InfoContext(ctx, "Live subscriptions", append(attrs, "total", total)...)
}

// Stop waits for a running sample to finish.
func (j *BusMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Bus monitor job stopped")
}
