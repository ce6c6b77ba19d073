package tracker

import (
	"strings"

	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// Record is one bookmark lifted out of a browser tree, annotated with
// the folder path containing it. Records are derived fresh on every
// scan; the store keeps its own persistent form.
type Record struct {
	Browser    entities.Browser
	FolderPath []string // folder titles from just below the root down to the immediate parent
	Title      string
	URL        string
}

type identity struct {
	browser entities.Browser
	url     string
	folder  string
}

func (r Record) identity() identity {
	return identity{browser: r.Browser, url: r.URL, folder: JoinFolderPath(r.FolderPath)}
}

// JoinFolderPath renders a folder path the way rows store it: folder
// titles joined with "/". A bookmark sitting directly under the root
// renders as "".
func JoinFolderPath(path []string) string {
	return strings.Join(path, "/")
}

// SplitFolderPath is the inverse of JoinFolderPath.
func SplitFolderPath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

// Flatten walks the tree and returns one Record per link, in pre-order
// traversal order (the order the browser itself displays). Each call
// runs a fresh traversal. The root's own title is not part of any path.
func Flatten(root *browsers.Node, browser entities.Browser) []Record {
	var records []Record
	Walk(root, func(path []string, link *browsers.Node) {
		records = append(records, Record{
			Browser:    browser,
			FolderPath: path,
			Title:      link.Title,
			URL:        link.URL,
		})
	})
	return records
}

// Walk visits every link of the tree in pre-order, handing fn the link
// together with the folder path that contains it. The path slice is
// shared between links of the same folder and must not be mutated.
func Walk(root *browsers.Node, fn func(path []string, link *browsers.Node)) {
	if root == nil {
		return
	}
	walkChildren(root, nil, fn)
}

func walkChildren(folder *browsers.Node, path []string, fn func(path []string, link *browsers.Node)) {
	for _, child := range folder.Children {
		switch child.Kind {
		case browsers.NodeKindLink:
			fn(path, child)
		case browsers.NodeKindFolder:
			next := make([]string, len(path)+1)
			copy(next, path)
			next[len(path)] = child.Title
			walkChildren(child, next, fn)
		}
	}
}
