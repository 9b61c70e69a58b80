package jobs

import (
	"context"
	"log/slog"

	"tableside/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// archiveSchedule runs the sweep at 03:00 every night, outside service hours.
const archiveSchedule = "0 0 3 * * *"

// ArchiveCompletedOrdersJob manages the nightly archival sweep. Orders whose
// status reached Completed without going through the auto-archive path are
// moved to the archive in one batch.
type ArchiveCompletedOrdersJob struct {
	handler commands.ArchiveCompletedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewArchiveCompletedOrdersJob creates the nightly archival job.
func NewArchiveCompletedOrdersJob(handler commands.ArchiveCompletedOrdersCommandHandler, logger *slog.Logger) *ArchiveCompletedOrdersJob {
	return &ArchiveCompletedOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "archive_completed_orders_job"),
	}
}

// Start schedules the nightly sweep.
func (j *ArchiveCompletedOrdersJob) Start() error {
	_, err := j.cron.AddFunc(archiveSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewArchiveCompletedOrdersCommand()

		count, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Archive sweep failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Archive sweep finished", "archived", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive completed orders job started (nightly at 03:00)")
	return nil
}

// Stop stops the nightly sweep.
func (j *ArchiveCompletedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive completed orders job stopped")
}
