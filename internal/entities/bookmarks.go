package entities

import (
	"fmt"
	"strings"
	"time"
)

type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserEdge    Browser = "edge"
)

func (b Browser) DisplayName() string {
	switch b {
	case BrowserChrome:
		return "Google Chrome"
	case BrowserFirefox:
		return "Mozilla Firefox"
	case BrowserEdge:
		return "Microsoft Edge"
	default:
		return string(b)
	}
}

// ParseBrowser converts user input ("chrome", "Firefox") to a Browser.
func ParseBrowser(s string) (Browser, error) {
	switch Browser(strings.ToLower(strings.TrimSpace(s))) {
	case BrowserChrome:
		return BrowserChrome, nil
	case BrowserFirefox:
		return BrowserFirefox, nil
	case BrowserEdge:
		return BrowserEdge, nil
	}
	return "", fmt.Errorf("unknown browser %q (expected chrome, firefox or edge)", s)
}

// Bookmark is one tracked bookmark. A bookmark's identity is the
// (browser, url, folder_path) triple: the same URL filed under two
// folders, or seen in two browsers, is two rows.
type Bookmark struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Browser    Browser `gorm:"uniqueIndex:idx_bookmark_identity;size:20" json:"browser"`
	URL        string  `gorm:"uniqueIndex:idx_bookmark_identity;size:2048" json:"url"`
	FolderPath string  `gorm:"uniqueIndex:idx_bookmark_identity;size:1024" json:"folder_path"` // folder titles joined with "/"
	Title      string  `gorm:"size:512" json:"title"`

	FirstSeen   time.Time `json:"first_seen"`   // never changes after insert
	LastUpdated time.Time `json:"last_updated"` // bumped only when a later sighting changes the row
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
