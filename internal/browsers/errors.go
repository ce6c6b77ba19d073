package browsers

import (
	"errors"
	"fmt"

	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// ErrNotInstalled indicates a browser's profile was not found on this machine
var ErrNotInstalled = errors.New("browser is not installed")

// NotInstalledError wraps ErrNotInstalled with the browser and the path
// that was probed. Sync treats it as an expected skip, not a failure.
type NotInstalledError struct {
	Browser entities.Browser
	Path    string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%s is not installed (no profile at %s)", e.Browser.DisplayName(), e.Path)
}

func (e *NotInstalledError) Unwrap() error {
	return ErrNotInstalled
}

// ParseError indicates a bookmark file was missing, unreadable or malformed.
// Sync skips the browser and carries on with the others.
type ParseError struct {
	Browser entities.Browser
	Path    string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s bookmarks at %s: %v", e.Browser, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
