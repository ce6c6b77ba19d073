package exporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// JSONExporter writes bookmarks as an indented JSON array.
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(w io.Writer, bookmarks []entities.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []entities.Bookmark{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(bookmarks); err != nil {
		return fmt.Errorf("failed to encode bookmarks as JSON: %w", err)
	}
	return nil
}

var _ BookmarkExporter = (*JSONExporter)(nil)
