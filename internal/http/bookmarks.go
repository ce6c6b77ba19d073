package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// BookmarkStore provides the bookmark operations the API exposes.
type BookmarkStore interface {
	ListBookmarks() ([]entities.Bookmark, error)
	ListBookmarksByBrowser(browser entities.Browser) ([]entities.Bookmark, error)
	GetBookmarkByID(id uint) (*entities.Bookmark, error)
	AddBookmark(title, url string, browser entities.Browser, folderPath string) (*entities.Bookmark, error)
	DeleteBookmark(id uint) error
}

type BookmarksController struct {
	store BookmarkStore
}

func NewBookmarksController(store BookmarkStore) *BookmarksController {
	return &BookmarksController{
		store: store,
	}
}

// ListBookmarks returns all tracked bookmarks, optionally filtered by browser.
// GET /api/bookmarks?browser=chrome
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	var (
		bookmarks []entities.Bookmark
		err       error
	)

	if browserParam := c.Query("browser"); browserParam != "" {
		browser, parseErr := entities.ParseBrowser(browserParam)
		if parseErr != nil {
			respondBadRequest(c, parseErr.Error())
			return
		}
		bookmarks, err = bc.store.ListBookmarksByBrowser(browser)
	} else {
		bookmarks, err = bc.store.ListBookmarks()
	}
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "count": len(bookmarks)})
}

// AddBookmark stores one manually added bookmark.
// POST /api/bookmarks
func (bc *BookmarksController) AddBookmark(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required"`
		URL        string `json:"url" binding:"required"`
		Browser    string `json:"browser" binding:"required"`
		FolderPath string `json:"folder_path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title, url and browser are required")
		return
	}

	browser, err := entities.ParseBrowser(req.Browser)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	bookmark, err := bc.store.AddBookmark(req.Title, req.URL, browser, req.FolderPath)
	if err != nil {
		respondInternalError(c, err, "add bookmark")
		return
	}

	respondCreated(c, bookmark)
}

// DeleteBookmark removes one bookmark by ID.
// DELETE /api/bookmarks/:id
func (bc *BookmarksController) DeleteBookmark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bookmark, err := bc.store.GetBookmarkByID(id)
	if err != nil {
		respondInternalError(c, err, "delete bookmark")
		return
	}
	if bookmark == nil {
		respondNotFound(c, "bookmark")
		return
	}

	if err := bc.store.DeleteBookmark(id); err != nil {
		respondInternalError(c, err, "delete bookmark")
		return
	}

	respondSuccess(c, "bookmark deleted")
}
