package jobs

import (
	"fmt"
	"log/slog"

	"freightmatch/internal/adapters/out/sqlitedb"
	"freightmatch/internal/core/application/usecases/queries"
	"freightmatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderReminderJob *PendingOrderReminderJob
	storageSnapshotJob      *StorageSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	notifier ports.Notifier,
	exporter *sqlitedb.SnapshotExporter,
	snapshotPath string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderReminderJob: NewPendingOrderReminderJob(getAllOrdersHandler, notifier, logger),
		storageSnapshotJob:      NewStorageSnapshotJob(exporter, snapshotPath, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order reminder job: %w", err)
	}

	if err := jm.storageSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingOrderReminderJob.Stop()
		return fmt.Errorf("failed to start storage snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storageSnapshotJob.Stop()
	jm.pendingOrderReminderJob.Stop()
}
