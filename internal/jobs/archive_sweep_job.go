package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dockflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ArchiveSweepJob moves completed loadings to the archive once per day at the
// configured wall-clock time. A civil-date marker guards against double runs
// when the scheduler misfires around the boundary.
type ArchiveSweepJob struct {
	handler commands.ArchiveCompletedCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger

	hour   int
	minute int

	mu        sync.Mutex
	lastSwept string
}

// NewArchiveSweepJob creates the daily archival job. hour and minute select
// the local wall-clock time the sweep fires at.
func NewArchiveSweepJob(
	handler commands.ArchiveCompletedCommandHandler,
	hour, minute int,
	logger *slog.Logger,
) *ArchiveSweepJob {
	return &ArchiveSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "archive_sweep_job"),
		hour:    hour,
		minute:  minute,
	}
}

// Start schedules the sweep at the configured time every day.
func (j *ArchiveSweepJob) Start() error {
	spec := fmt.Sprintf("0 %d %d * * *", j.minute, j.hour)
	_, err := j.cron.AddFunc(spec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive sweep job started",
		"hour", j.hour, "minute", j.minute)
	return nil
}

// Stop stops the sweep job.
func (j *ArchiveSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Archive sweep job stopped")
}

func (j *ArchiveSweepJob) run() {
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	j.mu.Lock()
	if j.lastSwept == today {
		j.mu.Unlock()
		return
	}
	j.lastSwept = today
	j.mu.Unlock()

	cmd, err := commands.NewArchiveCompletedCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive sweep command construction failed", "error", err)
		return
	}

	count, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive sweep failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Archive sweep finished", "archived", count)
}
