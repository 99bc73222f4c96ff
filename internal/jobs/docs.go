// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BusMonitorJob logs the number of live subscriptions on every order topic
// (PENDING_ORDER, COOKED_ORDER, UPDATE_ORDER). Its schedule comes from
// BUS_MONITOR_SCHEDULE and accepts standard five-field specs as well as
// descriptors such as "@every 30s".
//
// # Usage
//
//	jobManager := jobs.NewJobManager(broker, cfg.BusMonitorSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
