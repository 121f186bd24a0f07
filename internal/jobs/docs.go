// Package jobs provides scheduled background tasks for the parcel-locker
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AvailabilityReportJob - Periodically logs how many lockers are open so
// operators can spot network-wide outages from the service logs.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getOpenPostautomatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
