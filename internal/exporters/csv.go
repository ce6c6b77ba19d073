package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

var csvHeader = []string{"Title", "URL", "Browser", "Folder", "Date Added", "Last Updated"}

// CSVExporter writes bookmarks as comma-separated values with a header row.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, bookmarks []entities.Bookmark) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range bookmarks {
		bookmark := &bookmarks[i]
		record := []string{
			bookmark.Title,
			bookmark.URL,
			string(bookmark.Browser),
			bookmark.FolderPath,
			bookmark.FirstSeen.Format(time.RFC3339),
			bookmark.LastUpdated.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", bookmark.URL, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

var _ BookmarkExporter = (*CSVExporter)(nil)
