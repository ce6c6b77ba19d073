// Package browsers reads bookmark files out of local browser profiles.
//
// # Architecture
//
// Each supported browser family implements the same small surface:
//
//	profile path discovery → BookmarksPath() → ParseFile() → *Node tree
//
// Chrome and Edge share one on-disk format (a JSON document with a
// "roots" object), so both are served by ChromiumSource. Firefox keeps
// bookmarks inside places.sqlite and is served by FirefoxSource, which
// opens the database strictly read-only.
//
// Every source upholds the read-only contract: browser files are never
// written, locked for writing, or otherwise modified.
//
// # Adding a New Browser
//
// To add support for a new browser (e.g. Safari):
//
//  1. Create a new file: safari.go
//
//  2. Implement the three methods the sync pipeline consumes:
//
//     func (s *SafariSource) Browser() entities.Browser
//     func (s *SafariSource) BookmarksPath() (string, error)
//     func (s *SafariSource) ParseFile(path string) (*Node, error)
//
//  3. Return a *NotInstalledError from BookmarksPath when the profile
//     is absent, and a *ParseError from ParseFile when the file cannot
//     be decoded. The sync run skips the browser in both cases instead
//     of failing.
//
//  4. Add a default path to locate.go and register the source in the
//     entrypoint wiring.
package browsers
