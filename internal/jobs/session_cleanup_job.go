package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob sweeps abandoned customer sessions on a schedule.
// A session with no order activity inside the TTL window is removed; its
// orders are untouched, only the activity tracking goes away.
type SessionCleanupJob struct {
	sessions ports.SessionStore
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job sweeping sessions older than ttl.
func NewSessionCleanupJob(sessions ports.SessionStore, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job to run every minute.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		removed, sweepErr := j.sessions.DeleteExpired(ctx, j.ttl, time.Now())
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", sweepErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Swept abandoned sessions", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
