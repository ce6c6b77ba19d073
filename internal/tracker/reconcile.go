package tracker

import (
	"fmt"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

type Action string

const (
	ActionInsert    Action = "insert"
	ActionUpdate    Action = "update"
	ActionUnchanged Action = "unchanged"
)

// Change pairs a reconciler decision with the row to write (for inserts
// and updates) or the row as it stands (unchanged).
type Change struct {
	Action   Action
	Bookmark entities.Bookmark
}

// IdentityLookup resolves a bookmark identity to its stored row, nil
// when the identity has never been seen. The database satisfies it.
type IdentityLookup interface {
	FindByIdentity(browser entities.Browser, url, folderPath string) (*entities.Bookmark, error)
}

// Reconciler decides, for each scanned record, whether the store needs
// an insert, an update or nothing. FirstSeen is set once on insert and
// never touched again; LastUpdated moves only when a sighting actually
// changes the row.
type Reconciler struct {
	lookup IdentityLookup
	now    func() time.Time
}

func NewReconciler(lookup IdentityLookup) *Reconciler {
	return &Reconciler{lookup: lookup, now: time.Now}
}

// Reconcile maps incoming records to changes, exactly one per identity.
// When the same identity appears more than once in a batch (browser
// files can hold duplicate entries), the later occurrence wins.
func (r *Reconciler) Reconcile(incoming []Record) ([]Change, error) {
	deduped := make([]Record, 0, len(incoming))
	position := make(map[identity]int, len(incoming))
	for _, record := range incoming {
		key := record.identity()
		if i, seen := position[key]; seen {
			deduped[i] = record
			continue
		}
		position[key] = len(deduped)
		deduped = append(deduped, record)
	}

	changes := make([]Change, 0, len(deduped))
	for _, record := range deduped {
		change, err := r.reconcileOne(record)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

func (r *Reconciler) reconcileOne(record Record) (Change, error) {
	folder := JoinFolderPath(record.FolderPath)

	stored, err := r.lookup.FindByIdentity(record.Browser, record.URL, folder)
	if err != nil {
		return Change{}, fmt.Errorf("failed to look up %s bookmark %s: %w", record.Browser, record.URL, err)
	}

	if stored == nil {
		now := r.now()
		return Change{
			Action: ActionInsert,
			Bookmark: entities.Bookmark{
				Browser:     record.Browser,
				URL:         record.URL,
				FolderPath:  folder,
				Title:       record.Title,
				FirstSeen:   now,
				LastUpdated: now,
			},
		}, nil
	}

	// Folder and URL are part of the identity the row was found by, so
	// the title is the only field a sighting can change.
	if stored.Title == record.Title {
		return Change{Action: ActionUnchanged, Bookmark: *stored}, nil
	}

	updated := *stored
	updated.Title = record.Title
	updated.LastUpdated = r.now()
	return Change{Action: ActionUpdate, Bookmark: updated}, nil
}
