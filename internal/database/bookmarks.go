package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// UpsertBookmark inserts the row or, when the identity triple already
// exists, updates title and last_updated in place. One statement, so a
// crash mid-sync can never leave two rows with the same identity.
// first_seen is written on insert only and never touched by the
// conflict branch.
func (d *Database) UpsertBookmark(bookmark *entities.Bookmark) error {
	row := *bookmark
	row.ID = 0 // let the identity columns decide whether this is new

	err := d.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "browser"},
			{Name: "url"},
			{Name: "folder_path"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"title", "last_updated"}),
	}).Create(&row).Error
	if err != nil {
		return &StoreError{Op: "upsert bookmark", Err: err}
	}
	return nil
}

// FindByIdentity returns the stored row for the (browser, url, folder
// path) triple, nil when the identity has never been seen.
func (d *Database) FindByIdentity(browser entities.Browser, url, folderPath string) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := d.DB.Where("browser = ? AND url = ? AND folder_path = ?", browser, url, folderPath).
		First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "find bookmark", Err: err}
	}
	return &bookmark, nil
}

// ListBookmarks returns every stored bookmark in display order:
// browser, then folder path, then title.
func (d *Database) ListBookmarks() ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := d.DB.Order("browser, folder_path, title").Find(&bookmarks).Error
	if err != nil {
		return nil, &StoreError{Op: "list bookmarks", Err: err}
	}
	return bookmarks, nil
}

// ListBookmarksByBrowser returns one browser's bookmarks, ordered by
// folder path then title.
func (d *Database) ListBookmarksByBrowser(browser entities.Browser) ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := d.DB.Where("browser = ?", browser).Order("folder_path, title").Find(&bookmarks).Error
	if err != nil {
		return nil, &StoreError{Op: "list bookmarks", Err: err}
	}
	return bookmarks, nil
}

func (d *Database) GetBookmarkByID(id uint) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := d.DB.First(&bookmark, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "get bookmark", Err: err}
	}
	return &bookmark, nil
}

// AddBookmark stores a manually entered bookmark. Adding an identity
// that already exists refreshes the stored title instead of failing.
func (d *Database) AddBookmark(title, url string, browser entities.Browser, folderPath string) (*entities.Bookmark, error) {
	now := time.Now()
	bookmark := &entities.Bookmark{
		Browser:     browser,
		URL:         url,
		FolderPath:  folderPath,
		Title:       title,
		FirstSeen:   now,
		LastUpdated: now,
	}
	if err := d.UpsertBookmark(bookmark); err != nil {
		return nil, err
	}
	return d.FindByIdentity(browser, url, folderPath)
}

func (d *Database) DeleteBookmark(id uint) error {
	result := d.DB.Delete(&entities.Bookmark{}, id)
	if result.Error != nil {
		return &StoreError{Op: "delete bookmark", Err: result.Error}
	}
	return nil
}

func (d *Database) CountBookmarks() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Bookmark{}).Count(&count).Error
	if err != nil {
		return 0, &StoreError{Op: "count bookmarks", Err: err}
	}
	return count, nil
}

func (d *Database) CountBookmarksByBrowser(browser entities.Browser) (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Bookmark{}).Where("browser = ?", browser).Count(&count).Error
	if err != nil {
		return 0, &StoreError{Op: "count bookmarks", Err: err}
	}
	return count, nil
}
