// Package jobs provides the background tasks of the wand shop, built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. DeliveryScheduler - one-shot timers moving a Dispatched order to Delivered
//     after the delivery delay. It implements ports.DeliveryScheduler and is used
//     when no Temporal cluster is configured.
//  2. OverdueDeliveryJob - a periodic sweep delivering orders dispatched longer ago
//     than the delay. It picks up timers lost on restart or never scheduled.
//
// # Usage
//
//	scheduler := jobs.NewDeliveryScheduler(deliverHandler, logger)
//	overdue := jobs.NewOverdueDeliveryJob(overdueHandler, delay, time.Minute, logger)
//	jobManager := jobs.NewJobManager(overdue, scheduler)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Delivery failures are logged and not retried. An order that already left
// Dispatched is skipped silently.
package jobs
