package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// SyncRunner executes one bookmark sync and records it.
type SyncRunner interface {
	Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error)
}

// SyncBrowsersTask reads every installed browser's bookmarks in the background.
type SyncBrowsersTask struct {
	Trigger entities.SyncTrigger `json:"trigger"`
}

// Config returns the queue configuration for background syncs.
// A failed sync is not retried; the next schedule or manual run covers it.
func (t SyncBrowsersTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "sync_browsers",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SyncBrowsersProcessor creates a processor function for SyncBrowsersTask.
func SyncBrowsersProcessor(runner SyncRunner) backlite.QueueProcessor[SyncBrowsersTask] {
	return func(ctx context.Context, task SyncBrowsersTask) error {
		if runner == nil {
			return fmt.Errorf("sync runner not configured")
		}

		trigger := task.Trigger
		if trigger == "" {
			trigger = entities.SyncTriggerAPI
		}

		run, report, err := runner.Run(ctx, trigger)
		if err != nil {
			return fmt.Errorf("sync browsers: %w", err)
		}

		log.Printf("[TASK] Sync %s finished: %d inserted, %d updated, %d unchanged (%d browsers, %d skipped)",
			run.RunID, report.Inserted, report.Updated, report.Unchanged, report.Processed, report.Skipped)
		return nil
	}
}

// NewSyncBrowsersQueue creates a backlite queue for background syncs.
func NewSyncBrowsersQueue(runner SyncRunner) backlite.Queue {
	return backlite.NewQueue(SyncBrowsersProcessor(runner))
}
