// Package jobs contains the scheduled background work of the application:
// reminding about orders that sit unaccepted and mirroring the durable
// records to a snapshot file. Jobs run on cron schedules and are managed
// as a group by the JobManager.
package jobs
