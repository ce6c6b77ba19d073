package browsers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// chromiumRootOrder is the order Chrome itself presents its top-level
// folders in. Roots outside this list are visited afterwards, in name
// order, so a scan is deterministic regardless of map iteration.
var chromiumRootOrder = []string{"bookmark_bar", "other", "synced"}

type chromiumNode struct {
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Children []chromiumNode `json:"children"`
}

type chromiumFile struct {
	Roots map[string]json.RawMessage `json:"roots"`
}

// ChromiumSource reads the JSON bookmark file format shared by Chrome
// and Edge. One instance serves exactly one of the two browsers.
type ChromiumSource struct {
	browser entities.Browser
	path    string // overrides the conventional bookmark file location when non-empty
}

func NewChromeSource(path string) *ChromiumSource {
	return &ChromiumSource{browser: entities.BrowserChrome, path: path}
}

func NewEdgeSource(path string) *ChromiumSource {
	return &ChromiumSource{browser: entities.BrowserEdge, path: path}
}

func (s *ChromiumSource) Browser() entities.Browser {
	return s.browser
}

func (s *ChromiumSource) BookmarksPath() (string, error) {
	path := s.path
	if path == "" {
		var err error
		if s.browser == entities.BrowserEdge {
			path, err = DefaultEdgeBookmarksPath()
		} else {
			path, err = DefaultChromeBookmarksPath()
		}
		if err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(path); err != nil {
		return "", &NotInstalledError{Browser: s.browser, Path: path}
	}
	return path, nil
}

func (s *ChromiumSource) ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Browser: s.browser, Path: path, Err: err}
	}
	defer f.Close()

	root, err := ParseChromium(f)
	if err != nil {
		return nil, &ParseError{Browser: s.browser, Path: path, Err: err}
	}
	return root, nil
}

// ParseChromium decodes a Chrome/Edge bookmark document into a Node
// tree. The folders under "roots" (bookmarks bar, other, synced) become
// first-level folders of a synthetic root, so a link sitting directly
// on the bookmarks bar ends up with folder path ["Bookmarks bar"].
func ParseChromium(r io.Reader) (*Node, error) {
	var doc chromiumFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode bookmark JSON: %w", err)
	}
	if doc.Roots == nil {
		return nil, errors.New("bookmark document has no roots object")
	}

	root := NewFolder("")
	for _, key := range chromiumRootKeys(doc.Roots) {
		var n chromiumNode
		if err := json.Unmarshal(doc.Roots[key], &n); err != nil {
			// Some versions keep sync metadata next to the root
			// folders; anything that is not a node is skipped.
			continue
		}
		if child := convertChromiumNode(n); child != nil {
			root.Children = append(root.Children, child)
		}
	}
	return root, nil
}

func chromiumRootKeys(roots map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(roots))
	seen := make(map[string]bool, len(chromiumRootOrder))
	for _, key := range chromiumRootOrder {
		if _, ok := roots[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	rest := make([]string, 0, len(roots))
	for key := range roots {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

func convertChromiumNode(n chromiumNode) *Node {
	switch n.Type {
	case "url":
		if n.URL == "" {
			return nil
		}
		return NewLink(n.Name, n.URL)
	case "folder":
		folder := NewFolder(n.Name)
		for _, child := range n.Children {
			if converted := convertChromiumNode(child); converted != nil {
				folder.Children = append(folder.Children, converted)
			}
		}
		return folder
	default:
		// Unknown node types don't fail the scan.
		return nil
	}
}
