package parserimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleDatabaseCleanup sets up a daily job to clean up old records from the search_posts table
func (p *ParserImpl) ScheduleDatabaseCleanup(ctx context.Context) error {
	if err := p.ensureScheduler(); err != nil {
		return err
	}

	// Schedule a job to run at 3:00 AM every day
	_, err := p.Scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)), // At 3:00 AM
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, stopping database cleanup job")
				return
			}

			p.Logger.Info("Starting scheduled database cleanup job")

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			cleanupDuration := time.Duration(p.Config.Parser.CleanupOlderThanDay) * 24 * time.Hour

			rowsDeleted, err := p.SearchPostRepo.CleanupOldRecords(cleanupCtx, cleanupDuration)
			if err != nil {
				p.Logger.Error("Failed to clean up old records", "error", err)
				return
			}

			p.Logger.Info("Database cleanup completed successfully", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule database cleanup: %w", err)
	}

	p.Scheduler.Start()

	go func() {
		<-ctx.Done()
		p.Logger.Info("Stopping scheduler")
		if err := p.Scheduler.Shutdown(); err != nil {
			p.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
