package services

import (
	"context"
	"log"
	"sync"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// SyncService runs bookmark syncs and records each run. Every surface
// that can trigger a sync (HTTP, CLI, scheduler, task queue) goes
// through here, so runs within one process never interleave.
type SyncService struct {
	mu       sync.Mutex
	syncer   BookmarkSyncer
	recorder RunRecorder
}

func NewSyncService(syncer BookmarkSyncer, recorder RunRecorder) *SyncService {
	return &SyncService{syncer: syncer, recorder: recorder}
}

// Run executes one sync pass and persists its outcome. The report is
// returned even when the run fails partway, so callers can show what
// did complete.
func (s *SyncService) Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, err := s.recorder.StartSyncRun(trigger)
	if err != nil {
		return nil, nil, err
	}

	report, runErr := s.syncer.Run(ctx)

	run.Inserted = report.Inserted
	run.Updated = report.Updated
	run.Unchanged = report.Unchanged
	run.BrowsersProcessed = report.Processed
	run.BrowsersSkipped = report.Skipped
	run.SkipDetails = report.SkipDetails()
	if runErr != nil {
		run.Status = entities.SyncStatusFailed
		run.Error = runErr.Error()
	} else {
		run.Status = entities.SyncStatusCompleted
	}

	// History is best-effort once the run itself is done; a recording
	// failure must not turn a completed sync into a reported failure.
	if err := s.recorder.FinishSyncRun(run); err != nil {
		log.Printf("failed to record sync run %s: %v", run.RunID, err)
	}

	return run, report, runErr
}
