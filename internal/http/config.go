package http

import (
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/scheduler"
	"github.com/PraxisPercival/Bookmarker/internal/tasks"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database       *database.Database
	BookmarkStore  BookmarkStore
	RunStore       RunStore
	SyncRunner     SyncRunner
	BrowserCounter BrowserCounter

	// Browser sources for the installed-browsers endpoint
	Sources []tracker.Source

	// Background sync (both optional)
	TaskClient *tasks.Client
	Scheduler  *scheduler.BrowserSyncScheduler

	// Application info
	Version string
}
