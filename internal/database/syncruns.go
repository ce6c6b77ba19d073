package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// StartSyncRun opens a new run record in status running.
func (d *Database) StartSyncRun(trigger entities.SyncTrigger) (*entities.SyncRun, error) {
	run := &entities.SyncRun{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		Status:    entities.SyncStatusRunning,
		StartedAt: time.Now(),
	}
	if err := d.DB.Create(run).Error; err != nil {
		return nil, &StoreError{Op: "start sync run", Err: err}
	}
	return run, nil
}

// FinishSyncRun stamps CompletedAt and persists whatever counts and
// status the caller filled in.
func (d *Database) FinishSyncRun(run *entities.SyncRun) error {
	now := time.Now()
	run.CompletedAt = &now
	if err := d.DB.Save(run).Error; err != nil {
		return &StoreError{Op: "finish sync run", Err: err}
	}
	return nil
}

// ListSyncRuns returns the most recent runs, newest first.
func (d *Database) ListSyncRuns(limit int) ([]entities.SyncRun, error) {
	var runs []entities.SyncRun
	query := d.DB.Order("started_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runs).Error; err != nil {
		return nil, &StoreError{Op: "list sync runs", Err: err}
	}
	return runs, nil
}

// LatestSyncRun returns the most recent run, nil when none has happened.
func (d *Database) LatestSyncRun() (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := d.DB.Order("started_at DESC, id DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "latest sync run", Err: err}
	}
	return &run, nil
}
