// Package database provides the data access layer for the application.
//
// # Architecture
//
// One SQLite database holds everything, accessed through GORM:
//
//	database/
//	├── database.go   # Connection setup and migrations
//	├── bookmarks.go  # Bookmark upsert, lookup, listing, manual add/delete
//	├── syncruns.go   # Sync run history
//	└── errors.go     # StoreError
//
// # Identity Constraint
//
// The bookmarks table carries a unique index over (browser, url,
// folder_path). UpsertBookmark leans on it with a single
// INSERT ... ON CONFLICT statement, which is what makes each upsert
// atomic per record: a crash mid-sync can lose pending rows but can
// never produce a duplicate identity.
//
// # Usage
//
//	db, err := database.NewDatabase("./bookmarks.db")
//	rows, err := db.ListBookmarks()
//
// Failures coming out of this package wrap *StoreError; callers treat
// them as fatal to the operation in flight and retryable on the next.
package database
