package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

const browsersTestChromeFile = `{
  "roots": {
    "bookmark_bar": {
      "type": "folder",
      "name": "Bookmarks bar",
      "children": [{"type": "url", "name": "Go", "url": "https://go.dev"}]
    }
  }
}`

func setupBrowsersTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_browsers_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestBrowsersController_ListBrowsers(t *testing.T) {
	db, cleanup := setupBrowsersTestDB(t)
	defer cleanup()

	_, err := db.AddBookmark("Go", "https://go.dev", entities.BrowserChrome, "Bookmarks bar")
	require.NoError(t, err)
	_, err = db.AddBookmark("HN", "https://news.ycombinator.com", entities.BrowserChrome, "Bookmarks bar")
	require.NoError(t, err)

	chromePath := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, os.WriteFile(chromePath, []byte(browsersTestChromeFile), 0o644))

	chrome := browsers.NewChromeSource(chromePath)
	edge := browsers.NewEdgeSource(filepath.Join(t.TempDir(), "missing", "Bookmarks"))

	controller := NewBrowsersController(db, chrome, edge)

	router := gin.New()
	router.GET("/api/browsers", controller.ListBrowsers)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/browsers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Browsers []BrowserStatus `json:"browsers"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Browsers, 2)

	chromeStatus := response.Browsers[0]
	assert.Equal(t, entities.BrowserChrome, chromeStatus.Browser)
	assert.Equal(t, "Google Chrome", chromeStatus.DisplayName)
	assert.True(t, chromeStatus.Installed)
	assert.Equal(t, chromePath, chromeStatus.BookmarksPath)
	assert.Equal(t, int64(2), chromeStatus.StoredBookmarks)

	edgeStatus := response.Browsers[1]
	assert.Equal(t, entities.BrowserEdge, edgeStatus.Browser)
	assert.False(t, edgeStatus.Installed)
	assert.Empty(t, edgeStatus.BookmarksPath)
	assert.Equal(t, int64(0), edgeStatus.StoredBookmarks)
}
