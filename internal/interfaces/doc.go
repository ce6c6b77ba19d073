// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - BookmarkStore: Bookmark CRUD for the API (internal/http/bookmarks.go)
//   - BookmarkLister: Read-only bookmark access for exports (internal/http/export.go)
//   - RunStore: Sync run history (internal/http/sync.go)
//   - BrowserCounter: Per-browser bookmark counts (internal/http/browsers.go)
//   - Store: The slice of the database the sync pipeline writes through (internal/tracker/syncer.go)
//   - RunRecorder: Persisting run outcomes (internal/services/interfaces.go)
//
// ## Sync Interfaces
//
//   - SyncRunner: One full sync, recorded. Declared separately by each
//     trigger surface (internal/http/sync.go, internal/scheduler/browser_sync.go,
//     internal/tasks/sync_browsers.go); all are satisfied by services.SyncService.
//   - BookmarkSyncer: The scan itself (internal/services/interfaces.go)
//
// ## Browser Source Interfaces
//
//   - Source: One readable browser (internal/tracker/syncer.go)
//
// ## Export Interfaces
//
//   - BookmarkExporter: Serialize bookmarks to a writer (internal/exporters/generic.go)
//
// # Adding a New Browser
//
// To track bookmarks from another browser:
//
//  1. Add the browser constant and its display name in internal/entities
//
//  2. Implement tracker.Source in internal/browsers/
//
//     type SafariSource struct {
//         path string
//     }
//
//     func (s *SafariSource) Browser() entities.Browser
//     func (s *SafariSource) BookmarksPath() (string, error)
//     func (s *SafariSource) ParseFile(path string) (*browsers.Node, error)
//
//     BookmarksPath returns a NotInstalledError when no profile is
//     found, so syncs skip the browser instead of failing.
//
//  3. Add the source to the scan lists in internal/entrypoint and
//     internal/cli, and a config override for its path
//
//  4. Add compile-time check:
//
//     var _ tracker.Source = (*SafariSource)(nil)
//
// # Adding a New Export Format
//
// To export bookmarks in another format (e.g., HTML):
//
//  1. Implement BookmarkExporter in internal/exporters/
//
//     type HTMLExporter struct{}
//
//     func (e *HTMLExporter) Export(w io.Writer, bookmarks []entities.Bookmark) error
//
//     var _ BookmarkExporter = (*HTMLExporter)(nil)
//
//  2. Add the Format constant and extend ParseFormat, ForFormat and
//     Format.ContentType
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
