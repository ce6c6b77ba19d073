package http

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/exporters"
)

// BookmarkLister reads the rows an export serializes.
type BookmarkLister interface {
	ListBookmarks() ([]entities.Bookmark, error)
}

type ExportController struct {
	lister BookmarkLister
}

func NewExportController(lister BookmarkLister) *ExportController {
	return &ExportController{
		lister: lister,
	}
}

// Export downloads all stored bookmarks as CSV or JSON.
// GET /api/export?format=csv
func (ec *ExportController) Export(c *gin.Context) {
	format, err := exporters.ParseFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	exporter, err := exporters.ForFormat(format)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	bookmarks, err := ec.lister.ListBookmarks()
	if err != nil {
		respondInternalError(c, err, "export bookmarks")
		return
	}

	filename := exporters.DefaultFilename(format, time.Now())
	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := exporter.Export(c.Writer, bookmarks); err != nil {
		// the response is already streaming; the failure can only be logged
		log.Printf("Internal error (export bookmarks): %v", err)
	}
}
