package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// Source is one browser the syncer can read. Implementations live in
// the browsers package; anything exposing these three methods can be
// synced.
type Source interface {
	Browser() entities.Browser
	BookmarksPath() (string, error)
	ParseFile(path string) (*browsers.Node, error)
}

// Store is the slice of the database the syncer writes through.
type Store interface {
	IdentityLookup
	UpsertBookmark(bookmark *entities.Bookmark) error
}

// BrowserReport describes what one browser contributed to a run.
type BrowserReport struct {
	Browser    entities.Browser `json:"browser"`
	Skipped    bool             `json:"skipped"`
	SkipReason string           `json:"skip_reason,omitempty"`
	Inserted   int              `json:"inserted"`
	Updated    int              `json:"updated"`
	Unchanged  int              `json:"unchanged"`
}

// RunReport aggregates one full pass over the configured browsers.
type RunReport struct {
	Browsers  []BrowserReport `json:"browsers"`
	Inserted  int             `json:"inserted"`
	Updated   int             `json:"updated"`
	Unchanged int             `json:"unchanged"`
	Processed int             `json:"browsers_processed"`
	Skipped   int             `json:"browsers_skipped"`
}

func (r *RunReport) add(b BrowserReport) {
	r.Browsers = append(r.Browsers, b)
	if b.Skipped {
		r.Skipped++
		return
	}
	r.Processed++
	r.Inserted += b.Inserted
	r.Updated += b.Updated
	r.Unchanged += b.Unchanged
}

// Summary renders the per-browser lines a user sees after a run.
func (r *RunReport) Summary() string {
	var sb strings.Builder
	for _, b := range r.Browsers {
		if b.Skipped {
			fmt.Fprintf(&sb, "%s: skipped (%s)\n", b.Browser, b.SkipReason)
			continue
		}
		fmt.Fprintf(&sb, "%s: %d inserted, %d updated, %d unchanged\n", b.Browser, b.Inserted, b.Updated, b.Unchanged)
	}
	fmt.Fprintf(&sb, "total: %d inserted, %d updated, %d unchanged (%d processed, %d skipped)",
		r.Inserted, r.Updated, r.Unchanged, r.Processed, r.Skipped)
	return sb.String()
}

// SkipDetails renders one "browser: reason" line per skipped browser,
// empty when nothing was skipped.
func (r *RunReport) SkipDetails() string {
	var lines []string
	for _, b := range r.Browsers {
		if b.Skipped {
			lines = append(lines, fmt.Sprintf("%s: %s", b.Browser, b.SkipReason))
		}
	}
	return strings.Join(lines, "\n")
}

// Syncer runs the scan: for every source, locate → parse → flatten →
// reconcile → upsert. Browsers that cannot be read are skipped so the
// rest still sync; a store failure aborts the run with the committed
// upserts left in place.
type Syncer struct {
	sources    []Source
	store      Store
	reconciler *Reconciler

	// DryRun computes and counts changes without writing any.
	DryRun bool
}

func NewSyncer(store Store, sources ...Source) *Syncer {
	return &Syncer{
		sources:    sources,
		store:      store,
		reconciler: NewReconciler(store),
	}
}

func (s *Syncer) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{}
	for _, source := range s.sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		browserReport, err := s.runOne(source)
		report.add(browserReport)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s *Syncer) runOne(source Source) (BrowserReport, error) {
	browser := source.Browser()
	report := BrowserReport{Browser: browser}

	path, err := source.BookmarksPath()
	if err != nil {
		report.Skipped = true
		if errors.Is(err, browsers.ErrNotInstalled) {
			report.SkipReason = "not installed"
		} else {
			report.SkipReason = err.Error()
			log.Printf("skipping %s: %v", browser, err)
		}
		return report, nil
	}

	root, err := source.ParseFile(path)
	if err != nil {
		report.Skipped = true
		report.SkipReason = err.Error()
		log.Printf("skipping %s: %v", browser, err)
		return report, nil
	}

	records := Flatten(root, browser)

	changes, err := s.reconciler.Reconcile(records)
	if err != nil {
		return report, fmt.Errorf("failed to reconcile %s bookmarks: %w", browser, err)
	}

	for i := range changes {
		change := changes[i]
		switch change.Action {
		case ActionUnchanged:
			report.Unchanged++
			continue
		case ActionInsert:
			report.Inserted++
		case ActionUpdate:
			report.Updated++
		}

		if s.DryRun {
			continue
		}
		if err := s.store.UpsertBookmark(&change.Bookmark); err != nil {
			return report, fmt.Errorf("failed to store %s bookmark %s: %w", browser, change.Bookmark.URL, err)
		}
	}

	log.Printf("%s: %d inserted, %d updated, %d unchanged", browser, report.Inserted, report.Updated, report.Unchanged)
	return report, nil
}
