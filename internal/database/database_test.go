package database

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestUpsertBookmark(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	firstSeen := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("insert creates a new row", func(t *testing.T) {
		err := db.UpsertBookmark(&entities.Bookmark{
			Browser:     entities.BrowserChrome,
			URL:         "https://docs.example/",
			FolderPath:  "Work",
			Title:       "Docs",
			FirstSeen:   firstSeen,
			LastUpdated: firstSeen,
		})
		assert.NoError(t, err)

		count, err := db.CountBookmarks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("same identity updates in place", func(t *testing.T) {
		later := firstSeen.Add(24 * time.Hour)
		err := db.UpsertBookmark(&entities.Bookmark{
			Browser:     entities.BrowserChrome,
			URL:         "https://docs.example/",
			FolderPath:  "Work",
			Title:       "Docs (renamed)",
			FirstSeen:   later, // must be ignored by the conflict branch
			LastUpdated: later,
		})
		assert.NoError(t, err)

		count, err := db.CountBookmarks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "upsert must never duplicate an identity")

		row, err := db.FindByIdentity(entities.BrowserChrome, "https://docs.example/", "Work")
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "Docs (renamed)", row.Title)
		assert.WithinDuration(t, firstSeen, row.FirstSeen, time.Second, "first_seen is immutable")
		assert.WithinDuration(t, later, row.LastUpdated, time.Second)
	})

	t.Run("different folder is a different identity", func(t *testing.T) {
		err := db.UpsertBookmark(&entities.Bookmark{
			Browser:     entities.BrowserChrome,
			URL:         "https://docs.example/",
			FolderPath:  "Work/Sub",
			Title:       "Docs",
			FirstSeen:   firstSeen,
			LastUpdated: firstSeen,
		})
		assert.NoError(t, err)

		count, err := db.CountBookmarks()
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("different browser is a different identity", func(t *testing.T) {
		err := db.UpsertBookmark(&entities.Bookmark{
			Browser:     entities.BrowserEdge,
			URL:         "https://docs.example/",
			FolderPath:  "Work",
			Title:       "Docs",
			FirstSeen:   firstSeen,
			LastUpdated: firstSeen,
		})
		assert.NoError(t, err)

		count, err := db.CountBookmarks()
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestFindByIdentity(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	row, err := db.FindByIdentity(entities.BrowserFirefox, "https://nowhere.example/", "")
	assert.NoError(t, err)
	assert.Nil(t, row, "unknown identity resolves to nil, not an error")

	now := time.Now()
	require.NoError(t, db.UpsertBookmark(&entities.Bookmark{
		Browser: entities.BrowserFirefox, URL: "https://somewhere.example/",
		FolderPath: "News", Title: "Somewhere", FirstSeen: now, LastUpdated: now,
	}))

	row, err = db.FindByIdentity(entities.BrowserFirefox, "https://somewhere.example/", "News")
	assert.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Somewhere", row.Title)
	assert.NotZero(t, row.ID)
}

func TestListBookmarks_Ordering(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	seed := []entities.Bookmark{
		{Browser: entities.BrowserFirefox, URL: "https://f.example/", FolderPath: "Zoo", Title: "F"},
		{Browser: entities.BrowserChrome, URL: "https://c2.example/", FolderPath: "Work", Title: "Beta"},
		{Browser: entities.BrowserChrome, URL: "https://c1.example/", FolderPath: "Work", Title: "Alpha"},
		{Browser: entities.BrowserChrome, URL: "https://c3.example/", FolderPath: "Home", Title: "Gamma"},
		{Browser: entities.BrowserEdge, URL: "https://e.example/", FolderPath: "", Title: "E"},
	}
	for i := range seed {
		seed[i].FirstSeen = now
		seed[i].LastUpdated = now
		require.NoError(t, db.UpsertBookmark(&seed[i]))
	}

	rows, err := db.ListBookmarks()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// browser, then folder path, then title
	wantTitles := []string{"Gamma", "Alpha", "Beta", "E", "F"}
	for i, want := range wantTitles {
		assert.Equal(t, want, rows[i].Title, "row %d", i)
	}

	chromeRows, err := db.ListBookmarksByBrowser(entities.BrowserChrome)
	require.NoError(t, err)
	require.Len(t, chromeRows, 3)
	assert.Equal(t, "Gamma", chromeRows[0].Title)
}

func TestAddAndDeleteBookmark(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	added, err := db.AddBookmark("Manual entry", "https://manual.example/", entities.BrowserChrome, "Saved")
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.NotZero(t, added.ID)
	assert.Equal(t, "Manual entry", added.Title)

	t.Run("adding the same identity refreshes instead of duplicating", func(t *testing.T) {
		again, err := db.AddBookmark("Manual entry v2", "https://manual.example/", entities.BrowserChrome, "Saved")
		require.NoError(t, err)
		assert.Equal(t, added.ID, again.ID)
		assert.Equal(t, "Manual entry v2", again.Title)

		count, err := db.CountBookmarks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, db.DeleteBookmark(added.ID))

		row, err := db.GetBookmarkByID(added.ID)
		assert.NoError(t, err)
		assert.Nil(t, row)
	})
}

func TestCountBookmarksByBrowser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	for _, b := range []entities.Bookmark{
		{Browser: entities.BrowserChrome, URL: "https://a.example/", Title: "A"},
		{Browser: entities.BrowserChrome, URL: "https://b.example/", Title: "B"},
		{Browser: entities.BrowserFirefox, URL: "https://c.example/", Title: "C"},
	} {
		b.FirstSeen = now
		b.LastUpdated = now
		require.NoError(t, db.UpsertBookmark(&b))
	}

	chrome, err := db.CountBookmarksByBrowser(entities.BrowserChrome)
	require.NoError(t, err)
	assert.Equal(t, int64(2), chrome)

	edge, err := db.CountBookmarksByBrowser(entities.BrowserEdge)
	require.NoError(t, err)
	assert.Equal(t, int64(0), edge)
}

func TestSyncRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("latest is nil before any run", func(t *testing.T) {
		latest, err := db.LatestSyncRun()
		assert.NoError(t, err)
		assert.Nil(t, latest)
	})

	run, err := db.StartSyncRun(entities.SyncTriggerManual)
	require.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, entities.SyncStatusRunning, run.Status)
	assert.Nil(t, run.CompletedAt)

	t.Run("finish persists counts and status", func(t *testing.T) {
		run.Status = entities.SyncStatusCompleted
		run.Inserted = 12
		run.Updated = 3
		run.Unchanged = 40
		run.BrowsersProcessed = 2
		run.BrowsersSkipped = 1
		run.SkipDetails = "firefox: not installed"
		require.NoError(t, db.FinishSyncRun(run))

		latest, err := db.LatestSyncRun()
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, run.RunID, latest.RunID)
		assert.Equal(t, entities.SyncStatusCompleted, latest.Status)
		assert.Equal(t, 12, latest.Inserted)
		assert.Equal(t, "firefox: not installed", latest.SkipDetails)
		assert.NotNil(t, latest.CompletedAt)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		second, err := db.StartSyncRun(entities.SyncTriggerAPI)
		require.NoError(t, err)
		second.Status = entities.SyncStatusFailed
		second.Error = "database unavailable"
		require.NoError(t, db.FinishSyncRun(second))

		runs, err := db.ListSyncRuns(10)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, second.RunID, runs[0].RunID)

		limited, err := db.ListSyncRuns(1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}
