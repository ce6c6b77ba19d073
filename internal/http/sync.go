package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/scheduler"
	"github.com/PraxisPercival/Bookmarker/internal/tasks"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// SyncRunner executes one bookmark sync inline and records it.
type SyncRunner interface {
	Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error)
}

// RunStore reads recorded sync runs.
type RunStore interface {
	ListSyncRuns(limit int) ([]entities.SyncRun, error)
	LatestSyncRun() (*entities.SyncRun, error)
}

type SyncController struct {
	runner     SyncRunner
	runs       RunStore
	taskClient *tasks.Client
	scheduler  *scheduler.BrowserSyncScheduler
}

// NewSyncController creates the sync API controller. taskClient and sched
// may be nil; without a task client syncs run inline on the request.
func NewSyncController(runner SyncRunner, runs RunStore, taskClient *tasks.Client, sched *scheduler.BrowserSyncScheduler) *SyncController {
	return &SyncController{
		runner:     runner,
		runs:       runs,
		taskClient: taskClient,
		scheduler:  sched,
	}
}

// TriggerSync starts a sync of all browsers.
// POST /api/sync
// With the task queue enabled the sync runs in the background (202);
// otherwise it runs inline and the response carries the full report.
func (sc *SyncController) TriggerSync(c *gin.Context) {
	if sc.taskClient != nil {
		ids, err := sc.taskClient.Add(tasks.SyncBrowsersTask{Trigger: entities.SyncTriggerAPI}).Save()
		if err != nil {
			respondInternalError(c, err, "enqueue sync")
			return
		}
		respondAccepted(c, "sync started in background", gin.H{"task_id": ids[0]})
		return
	}

	run, report, err := sc.runner.Run(c.Request.Context(), entities.SyncTriggerAPI)
	if err != nil {
		respondInternalError(c, err, "run sync")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"run": run, "report": report})
}

// GetStatus reports the latest sync run and scheduler state.
// GET /api/sync/status
func (sc *SyncController) GetStatus(c *gin.Context) {
	latest, err := sc.runs.LatestSyncRun()
	if err != nil {
		respondInternalError(c, err, "sync status")
		return
	}

	var nextRun *time.Time
	isSyncing := false
	schedulerRunning := false
	if sc.scheduler != nil {
		nextRun = sc.scheduler.GetNextRunTime()
		isSyncing = sc.scheduler.IsSyncing()
		schedulerRunning = sc.scheduler.IsRunning()
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"latest_run":        latest,
		"next_run":          nextRun,
		"is_syncing":        isSyncing,
		"scheduler_running": schedulerRunning,
	})
}

// ListRuns returns recent sync runs, newest first.
// GET /api/sync/runs?limit=20
func (sc *SyncController) ListRuns(c *gin.Context) {
	limit, ok := parseLimitQuery(c, 20)
	if !ok {
		return
	}

	runs, err := sc.runs.ListSyncRuns(limit)
	if err != nil {
		respondInternalError(c, err, "list sync runs")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}
