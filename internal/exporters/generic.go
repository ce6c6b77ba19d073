package exporters

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// BookmarkExporter serializes a list of bookmarks into one output format.
type BookmarkExporter interface {
	Export(w io.Writer, bookmarks []entities.Bookmark) error
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat converts user input ("csv", "JSON") to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q (expected csv or json)", s)
}

// ContentType returns the MIME type for serving an export over HTTP.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// ForFormat returns the exporter implementing the given format.
func ForFormat(format Format) (BookmarkExporter, error) {
	switch format {
	case FormatCSV:
		return NewCSVExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// DefaultFilename builds the timestamped name used when the caller
// does not pick one, e.g. bookmarks_export_20250402_184500.csv.
func DefaultFilename(format Format, now time.Time) string {
	return fmt.Sprintf("bookmarks_export_%s.%s", now.Format("20060102_150405"), format)
}

// ExportToFile writes bookmarks to path in the given format.
func ExportToFile(path string, format Format, bookmarks []entities.Bookmark) error {
	exporter, err := ForFormat(format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := exporter.Export(file, bookmarks); err != nil {
		file.Close()
		return fmt.Errorf("failed to export bookmarks to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to finalize export file %s: %w", path, err)
	}
	return nil
}
