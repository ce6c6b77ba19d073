package browsers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// moz_bookmarks row types, per the places.sqlite schema.
const (
	mozTypeBookmark  = 1
	mozTypeFolder    = 2
	mozTypeSeparator = 3
)

// mozRootID is the id of the top-level folder every places database carries.
const mozRootID = 1

// FirefoxSource reads bookmarks out of the places.sqlite database in the
// default Firefox profile.
type FirefoxSource struct {
	profilesDir string // overrides the conventional profiles directory when non-empty
}

func NewFirefoxSource(profilesDir string) *FirefoxSource {
	return &FirefoxSource{profilesDir: profilesDir}
}

func (s *FirefoxSource) Browser() entities.Browser {
	return entities.BrowserFirefox
}

// BookmarksPath finds places.sqlite inside the default profile. Current
// Firefox releases name the profile directory "<hash>.default-release";
// older installs used "<hash>.default".
func (s *FirefoxSource) BookmarksPath() (string, error) {
	dir := s.profilesDir
	if dir == "" {
		var err error
		dir, err = DefaultFirefoxProfilesDir()
		if err != nil {
			return "", err
		}
	}

	profile, err := findFirefoxProfile(dir)
	if err != nil {
		return "", &NotInstalledError{Browser: entities.BrowserFirefox, Path: dir}
	}

	path := filepath.Join(profile, "places.sqlite")
	if _, err := os.Stat(path); err != nil {
		return "", &NotInstalledError{Browser: entities.BrowserFirefox, Path: path}
	}
	return path, nil
}

func findFirefoxProfile(profilesDir string) (string, error) {
	entries, err := os.ReadDir(profilesDir)
	if err != nil {
		return "", fmt.Errorf("failed to read profiles directory: %w", err)
	}

	for _, suffix := range []string{".default-release", ".default"} {
		for _, entry := range entries {
			if entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
				return filepath.Join(profilesDir, entry.Name()), nil
			}
		}
	}

	return "", fmt.Errorf("no default profile found in %s", profilesDir)
}

func (s *FirefoxSource) ParseFile(path string) (*Node, error) {
	root, err := readPlaces(path)
	if err != nil {
		return nil, &ParseError{Browser: entities.BrowserFirefox, Path: path, Err: err}
	}
	return root, nil
}

type mozRow struct {
	id      int64
	parent  int64
	rowType int
	title   string
	url     sql.NullString
}

// readPlaces rebuilds the bookmark tree from moz_bookmarks. The database
// is opened read-only so a running Firefox is never disturbed.
func readPlaces(path string) (*Node, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open places database: %w", err)
	}
	defer db.Close()

	query := `
		SELECT b.id, b.parent, b.type, IFNULL(b.title, ''), p.url
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON b.fk = p.id
		ORDER BY b.parent, b.position
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var all []mozRow
	for rows.Next() {
		var r mozRow
		if err := rows.Scan(&r.id, &r.parent, &r.rowType, &r.title, &r.url); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	folders := make(map[int64]*Node, len(all))
	for _, r := range all {
		if r.rowType == mozTypeFolder || r.id == mozRootID {
			folders[r.id] = NewFolder(r.title)
		}
	}

	root, ok := folders[mozRootID]
	if !ok {
		return nil, fmt.Errorf("places database has no root folder")
	}

	// Rows arrive ordered by (parent, position), so appending keeps each
	// folder's children in Firefox's own order.
	for _, r := range all {
		if r.id == mozRootID {
			continue
		}
		parent, ok := folders[r.parent]
		if !ok {
			continue // orphaned row
		}
		switch r.rowType {
		case mozTypeFolder:
			parent.Children = append(parent.Children, folders[r.id])
		case mozTypeBookmark:
			if !r.url.Valid || r.url.String == "" {
				continue
			}
			parent.Children = append(parent.Children, NewLink(r.title, r.url.String))
		}
		// Separators carry no bookmark data and are dropped.
	}

	return root, nil
}
