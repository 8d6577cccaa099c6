package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuotePurgeJob manages the scheduled deletion of expired quote snapshots.
// Runs every five minutes; quotes are valid for thirty, so a batch lingers
// at most one validity window past its expiry.
type QuotePurgeJob struct {
	handler commands.PurgeExpiredQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuotePurgeJob creates a new job for purging expired quote snapshots.
// Uses PurgeExpiredQuotesCommandHandler to delete batches past their
// validity window.
func NewQuotePurgeJob(handler commands.PurgeExpiredQuotesCommandHandler, logger *slog.Logger) *QuotePurgeJob {
	return &QuotePurgeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_purge_job"),
	}
}

// Start begins the quote purge job to run every five minutes.
func (j *QuotePurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewPurgeExpiredQuotesCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote purge job failed to build command", "error", cmdErr)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Quote purge job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged expired quote batches", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote purge job started (running every five minutes)")
	return nil
}

// Stop stops the quote purge job.
func (j *QuotePurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote purge job stopped")
}
