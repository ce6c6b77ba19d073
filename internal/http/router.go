package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.TaskClient, cfg.Version)
	bookmarksController := NewBookmarksController(cfg.BookmarkStore)
	syncController := NewSyncController(cfg.SyncRunner, cfg.RunStore, cfg.TaskClient, cfg.Scheduler)
	browsersController := NewBrowsersController(cfg.BrowserCounter, cfg.Sources...)
	exportController := NewExportController(cfg.BookmarkStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Bookmarks API endpoints
	router.GET("/api/bookmarks", bookmarksController.ListBookmarks)
	router.POST("/api/bookmarks", bookmarksController.AddBookmark)
	router.DELETE("/api/bookmarks/:id", bookmarksController.DeleteBookmark)

	// Sync endpoints
	router.POST("/api/sync", syncController.TriggerSync)
	router.GET("/api/sync/status", syncController.GetStatus)
	router.GET("/api/sync/runs", syncController.ListRuns)

	// Browser inventory
	router.GET("/api/browsers", browsersController.ListBrowsers)

	// Export endpoint
	router.GET("/api/export", exportController.Export)

	return router
}
