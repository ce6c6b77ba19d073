package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/http"
	"github.com/PraxisPercival/Bookmarker/internal/scheduler"
	"github.com/PraxisPercival/Bookmarker/internal/services"
	"github.com/PraxisPercival/Bookmarker/internal/tasks"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// The one Database type backs every store interface the HTTP layer
// and the sync pipeline consume.
var _ http.BookmarkStore = (*database.Database)(nil)
var _ http.BookmarkLister = (*database.Database)(nil)
var _ http.RunStore = (*database.Database)(nil)
var _ http.BrowserCounter = (*database.Database)(nil)
var _ tracker.Store = (*database.Database)(nil)
var _ services.RunRecorder = (*database.Database)(nil)

// =============================================================================
// Sync Orchestration
// =============================================================================

// Every trigger surface declares its own SyncRunner; the sync service
// satisfies all of them.
var _ http.SyncRunner = (*services.SyncService)(nil)
var _ scheduler.SyncRunner = (*services.SyncService)(nil)
var _ tasks.SyncRunner = (*services.SyncService)(nil)

// BookmarkSyncer implementations
var _ services.BookmarkSyncer = (*tracker.Syncer)(nil)

// =============================================================================
// Browser Sources
// =============================================================================

// Source implementations
var _ tracker.Source = (*browsers.ChromiumSource)(nil)
var _ tracker.Source = (*browsers.FirefoxSource)(nil)
