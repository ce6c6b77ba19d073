package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// fakeLookup is an in-memory IdentityLookup keyed the way the store is.
type fakeLookup struct {
	rows map[identity]*entities.Bookmark
	err  error
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{rows: make(map[identity]*entities.Bookmark)}
}

func (f *fakeLookup) FindByIdentity(browser entities.Browser, url, folderPath string) (*entities.Bookmark, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[identity{browser: browser, url: url, folder: folderPath}]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeLookup) put(b entities.Bookmark) {
	f.rows[identity{browser: b.Browser, url: b.URL, folder: b.FolderPath}] = &b
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestReconcile_InsertForNewIdentity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewReconciler(newFakeLookup())
	r.now = fixedClock(now)

	changes, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "Docs", URL: "https://docs.example/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	change := changes[0]
	if change.Action != ActionInsert {
		t.Fatalf("expected insert, got %s", change.Action)
	}
	if change.Bookmark.FolderPath != "Work" {
		t.Errorf("expected folder path 'Work', got '%s'", change.Bookmark.FolderPath)
	}
	if !change.Bookmark.FirstSeen.Equal(now) || !change.Bookmark.LastUpdated.Equal(now) {
		t.Errorf("expected both timestamps %v, got first_seen=%v last_updated=%v",
			now, change.Bookmark.FirstSeen, change.Bookmark.LastUpdated)
	}
}

func TestReconcile_UnchangedWhenNothingDiffers(t *testing.T) {
	firstSeen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lookup := newFakeLookup()
	lookup.put(entities.Bookmark{
		ID: 7, Browser: entities.BrowserChrome, URL: "https://docs.example/",
		FolderPath: "Work", Title: "Docs",
		FirstSeen: firstSeen, LastUpdated: firstSeen,
	})

	r := NewReconciler(lookup)
	r.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	changes, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "Docs", URL: "https://docs.example/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if changes[0].Action != ActionUnchanged {
		t.Fatalf("expected unchanged, got %s", changes[0].Action)
	}
	// No write, so the timestamps stay exactly as stored.
	if !changes[0].Bookmark.LastUpdated.Equal(firstSeen) {
		t.Errorf("last_updated must not move on unchanged, got %v", changes[0].Bookmark.LastUpdated)
	}
}

func TestReconcile_UpdateOnTitleChange(t *testing.T) {
	firstSeen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	lookup := newFakeLookup()
	lookup.put(entities.Bookmark{
		ID: 7, Browser: entities.BrowserChrome, URL: "https://docs.example/",
		FolderPath: "Work", Title: "Old title",
		FirstSeen: firstSeen, LastUpdated: firstSeen,
	})

	r := NewReconciler(lookup)
	r.now = fixedClock(now)

	changes, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "New title", URL: "https://docs.example/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	change := changes[0]
	if change.Action != ActionUpdate {
		t.Fatalf("expected update, got %s", change.Action)
	}
	if change.Bookmark.ID != 7 {
		t.Errorf("expected stored row id 7 to carry over, got %d", change.Bookmark.ID)
	}
	if change.Bookmark.Title != "New title" {
		t.Errorf("expected new title, got '%s'", change.Bookmark.Title)
	}
	if !change.Bookmark.FirstSeen.Equal(firstSeen) {
		t.Errorf("first_seen must be preserved, got %v", change.Bookmark.FirstSeen)
	}
	if !change.Bookmark.LastUpdated.Equal(now) {
		t.Errorf("expected last_updated %v, got %v", now, change.Bookmark.LastUpdated)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	lookup := newFakeLookup()
	r := NewReconciler(lookup)
	r.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	records := []Record{
		{Browser: entities.BrowserFirefox, FolderPath: []string{"News"}, Title: "Feed", URL: "https://feed.example/"},
	}

	first, err := r.Reconcile(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first[0].Action != ActionInsert {
		t.Fatalf("expected insert on first pass, got %s", first[0].Action)
	}

	// Apply the insert, then run again with identical input.
	lookup.put(first[0].Bookmark)
	r.now = fixedClock(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))

	second, err := r.Reconcile(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Action != ActionUnchanged {
		t.Fatalf("expected unchanged on second pass, got %s", second[0].Action)
	}
	if !second[0].Bookmark.LastUpdated.Equal(first[0].Bookmark.LastUpdated) {
		t.Errorf("last_updated moved on an identical second pass")
	}
}

func TestReconcile_DistinctIdentities(t *testing.T) {
	r := NewReconciler(newFakeLookup())
	r.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	// Same URL in two folders and two browsers: three distinct entries.
	changes, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "A", URL: "https://same.example/"},
		{Browser: entities.BrowserChrome, FolderPath: []string{"Home"}, Title: "A", URL: "https://same.example/"},
		{Browser: entities.BrowserEdge, FolderPath: []string{"Work"}, Title: "A", URL: "https://same.example/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	for _, c := range changes {
		if c.Action != ActionInsert {
			t.Errorf("expected insert, got %s", c.Action)
		}
	}
}

func TestReconcile_DuplicateInBatchLaterWins(t *testing.T) {
	r := NewReconciler(newFakeLookup())
	r.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	changes, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "Early title", URL: "https://dup.example/"},
		{Browser: entities.BrowserChrome, FolderPath: []string{"Work"}, Title: "Later title", URL: "https://dup.example/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("expected exactly 1 change for duplicate identity, got %d", len(changes))
	}
	if changes[0].Action != ActionInsert {
		t.Errorf("expected insert, got %s", changes[0].Action)
	}
	if changes[0].Bookmark.Title != "Later title" {
		t.Errorf("expected later occurrence to win, got '%s'", changes[0].Bookmark.Title)
	}
}

func TestReconcile_LookupErrorPropagates(t *testing.T) {
	lookup := newFakeLookup()
	lookup.err = errors.New("disk gone")

	r := NewReconciler(lookup)
	_, err := r.Reconcile([]Record{
		{Browser: entities.BrowserChrome, Title: "A", URL: "https://a.example/"},
	})
	if err == nil {
		t.Fatal("expected lookup error to propagate, got nil")
	}
}
