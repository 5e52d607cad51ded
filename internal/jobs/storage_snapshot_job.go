package jobs

import (
	"context"
	"log/slog"

	"freightmatch/internal/adapters/out/sqlitedb"

	"github.com/robfig/cron/v3"
)

// snapshotSchedule fires at the top of every minute.
const snapshotSchedule = "0 * * * * *"

// StorageSnapshotJob mirrors the durable records to a JSON snapshot file on
// a fixed schedule. The snapshot is advisory; a failed export is logged and
// retried on the next tick.
type StorageSnapshotJob struct {
	exporter *sqlitedb.SnapshotExporter
	path     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStorageSnapshotJob creates the snapshot job writing to path.
func NewStorageSnapshotJob(
	exporter *sqlitedb.SnapshotExporter,
	path string,
	logger *slog.Logger,
) *StorageSnapshotJob {
	return &StorageSnapshotJob{
		exporter: exporter,
		path:     path,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "storage_snapshot_job"),
	}
}

// Start schedules the export to run every minute.
func (j *StorageSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(snapshotSchedule, func() {
		ctx := context.Background()

		if err := j.exporter.Export(ctx, j.path); err != nil {
			j.logger.ErrorContext(ctx, "Storage snapshot failed", "error", err, "path", j.path)
			return
		}

		j.logger.DebugContext(ctx, "Storage snapshot written", "path", j.path)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Storage snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *StorageSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Storage snapshot job stopped")
}
