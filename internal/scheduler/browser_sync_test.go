package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

type stubRunner struct {
	calls atomic.Int32
}

func (r *stubRunner) Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error) {
	r.calls.Add(1)
	return &entities.SyncRun{Trigger: trigger}, &tracker.RunReport{Inserted: 1, Processed: 1}, nil
}

type blockingRunner struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (r *blockingRunner) Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error) {
	r.calls.Add(1)
	r.started <- struct{}{}
	<-r.release
	return &entities.SyncRun{}, &tracker.RunReport{}, nil
}

func TestValidateCronSchedule(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 * * * *"))
	assert.NoError(t, ValidateCronSchedule("*/15 * * * *"))
	assert.Error(t, ValidateCronSchedule("not a cron"))
	assert.Error(t, ValidateCronSchedule("0 0 * * * *"), "six fields rejected")
}

func TestCronDescription(t *testing.T) {
	assert.Equal(t, "Every hour at :00", CronDescription("0 * * * *"))
	assert.Equal(t, "Daily at midnight", CronDescription("0 0 * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * 2", CronDescription("5 4 * * 2"))
}

func TestNextRunTime(t *testing.T) {
	next, err := NextRunTime("0 * * * *")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, next.After(time.Now()))

	_, err = NextRunTime("bogus")
	assert.Error(t, err)
}

func TestBrowserSyncScheduler_StartStop(t *testing.T) {
	s := NewBrowserSyncScheduler(&stubRunner{}, "0 * * * *", true)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NotNil(t, s.GetNextRunTime())

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestBrowserSyncScheduler_DisabledDoesNotStart(t *testing.T) {
	s := NewBrowserSyncScheduler(&stubRunner{}, "0 * * * *", false)

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestBrowserSyncScheduler_RejectsInvalidSchedule(t *testing.T) {
	s := NewBrowserSyncScheduler(&stubRunner{}, "every day at noon", true)

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestBrowserSyncScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewBrowserSyncScheduler(&stubRunner{}, "0 * * * *", true)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	require.True(t, s.IsRunning())

	cancel()
	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestBrowserSyncScheduler_RunNowInvokesRunner(t *testing.T) {
	runner := &stubRunner{}
	s := NewBrowserSyncScheduler(runner, "0 * * * *", true)

	require.NoError(t, s.RunNow())
	assert.Eventually(t, func() bool { return runner.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestBrowserSyncScheduler_SkipsOverlappingRuns(t *testing.T) {
	runner := &blockingRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
	s := NewBrowserSyncScheduler(runner, "0 * * * *", true)

	go s.runSync()
	<-runner.started
	assert.True(t, s.IsSyncing())

	// second invocation hits the in-progress guard and returns immediately
	s.runSync()
	assert.Equal(t, int32(1), runner.calls.Load())

	close(runner.release)
	assert.Eventually(t, func() bool { return !s.IsSyncing() }, time.Second, 10*time.Millisecond)
}
