package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "bookmarks.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// Verify tasks database was created alongside the main one
	tasksDBPath := filepath.Join(tmpDir, "bookmarks-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestQueueDBPath(t *testing.T) {
	assert.Equal(t, "/data/bookmarks-tasks.db", queueDBPath("/data/bookmarks.db"))
	assert.Equal(t, "bookmarks-tasks", queueDBPath("bookmarks"))
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "bookmarks.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

// TestTask is a simple task for testing
type TestTask struct {
	Value string `json:"value"`
}

func (t TestTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "test_task",
		MaxAttempts: 1,
		Backoff:     time.Second,
		Timeout:     5 * time.Second,
	}
}

func TestTaskEnqueue(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "bookmarks.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	executed := make(chan string, 1)
	queue := backlite.NewQueue(func(ctx context.Context, task TestTask) error {
		executed <- task.Value
		return nil
	})
	client.Register(queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	ids, err := client.Add(TestTask{Value: "hello"}).Save()
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	select {
	case val := <-executed:
		assert.Equal(t, "hello", val)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}
}

func TestSyncBrowsersTaskConfig(t *testing.T) {
	task := SyncBrowsersTask{Trigger: entities.SyncTriggerAPI}
	cfg := task.Config()

	assert.Equal(t, "sync_browsers", cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

type processorRunner struct {
	trigger entities.SyncTrigger
	err     error
}

func (r *processorRunner) Run(ctx context.Context, trigger entities.SyncTrigger) (*entities.SyncRun, *tracker.RunReport, error) {
	r.trigger = trigger
	if r.err != nil {
		return nil, nil, r.err
	}
	return &entities.SyncRun{RunID: "run-1"}, &tracker.RunReport{Inserted: 3, Processed: 2}, nil
}

func TestSyncBrowsersProcessor(t *testing.T) {
	t.Run("runs the sync with the task trigger", func(t *testing.T) {
		runner := &processorRunner{}
		processor := SyncBrowsersProcessor(runner)

		err := processor(context.Background(), SyncBrowsersTask{Trigger: entities.SyncTriggerScheduled})
		require.NoError(t, err)
		assert.Equal(t, entities.SyncTriggerScheduled, runner.trigger)
	})

	t.Run("defaults to the api trigger", func(t *testing.T) {
		runner := &processorRunner{}
		processor := SyncBrowsersProcessor(runner)

		require.NoError(t, processor(context.Background(), SyncBrowsersTask{}))
		assert.Equal(t, entities.SyncTriggerAPI, runner.trigger)
	})

	t.Run("propagates sync failures", func(t *testing.T) {
		runner := &processorRunner{err: errors.New("store failure during upsert")}
		processor := SyncBrowsersProcessor(runner)

		err := processor(context.Background(), SyncBrowsersTask{})
		require.Error(t, err)
	})

	t.Run("fails without a runner", func(t *testing.T) {
		processor := SyncBrowsersProcessor(nil)
		assert.Error(t, processor(context.Background(), SyncBrowsersTask{}))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}
