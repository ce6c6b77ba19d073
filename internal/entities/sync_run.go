package entities

import (
	"time"
)

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

type SyncTrigger string

const (
	SyncTriggerManual    SyncTrigger = "manual" // CLI sync command or interactive menu
	SyncTriggerScheduled SyncTrigger = "scheduled"
	SyncTriggerAPI       SyncTrigger = "api"
)

// SyncRun records one pass over the installed browsers.
type SyncRun struct {
	ID      uint        `gorm:"primaryKey" json:"id"`
	RunID   string      `gorm:"uniqueIndex;size:36" json:"run_id"`
	Trigger SyncTrigger `gorm:"size:20" json:"trigger"`
	Status  SyncStatus  `gorm:"size:20" json:"status"`

	Inserted          int `json:"inserted"`
	Updated           int `json:"updated"`
	Unchanged         int `json:"unchanged"`
	BrowsersProcessed int `json:"browsers_processed"`
	BrowsersSkipped   int `json:"browsers_skipped"`

	SkipDetails string     `gorm:"type:text" json:"skip_details,omitempty"` // one "browser: reason" line per skip
	Error       string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}
