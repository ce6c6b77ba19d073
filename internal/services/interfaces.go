package services

import (
	"context"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// BookmarkSyncer runs one pass over the configured browsers.
// Use this interface when you only need to trigger a scan.
type BookmarkSyncer interface {
	Run(ctx context.Context) (*tracker.RunReport, error)
}

// RunRecorder persists sync run history.
type RunRecorder interface {
	StartSyncRun(trigger entities.SyncTrigger) (*entities.SyncRun, error)
	FinishSyncRun(run *entities.SyncRun) error
}
