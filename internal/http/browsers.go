package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// BrowserCounter counts stored bookmarks per browser.
type BrowserCounter interface {
	CountBookmarksByBrowser(browser entities.Browser) (int64, error)
}

type BrowsersController struct {
	sources []tracker.Source
	counter BrowserCounter
}

func NewBrowsersController(counter BrowserCounter, sources ...tracker.Source) *BrowsersController {
	return &BrowsersController{
		sources: sources,
		counter: counter,
	}
}

type BrowserStatus struct {
	Browser         entities.Browser `json:"browser"`
	DisplayName     string           `json:"display_name"`
	Installed       bool             `json:"installed"`
	BookmarksPath   string           `json:"bookmarks_path,omitempty"`
	StoredBookmarks int64            `json:"stored_bookmarks"`
}

// ListBrowsers reports each supported browser, whether a profile was found,
// and how many of its bookmarks are stored.
// GET /api/browsers
func (bc *BrowsersController) ListBrowsers(c *gin.Context) {
	statuses := make([]BrowserStatus, 0, len(bc.sources))
	for _, source := range bc.sources {
		status := BrowserStatus{
			Browser:     source.Browser(),
			DisplayName: source.Browser().DisplayName(),
		}

		if path, err := source.BookmarksPath(); err == nil {
			status.Installed = true
			status.BookmarksPath = path
		}

		count, err := bc.counter.CountBookmarksByBrowser(source.Browser())
		if err != nil {
			respondInternalError(c, err, "list browsers")
			return
		}
		status.StoredBookmarks = count

		statuses = append(statuses, status)
	}

	c.IndentedJSON(http.StatusOK, gin.H{"browsers": statuses})
}
