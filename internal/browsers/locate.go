package browsers

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultChromeBookmarksPath returns the conventional location of
// Chrome's bookmark file for the current OS and default profile.
func DefaultChromeBookmarksPath() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base, err := localAppData()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "Google", "Chrome", "User Data", "Default", "Bookmarks"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "Bookmarks"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks"), nil
	}
}

// DefaultEdgeBookmarksPath returns the conventional location of Edge's
// bookmark file for the current OS and default profile.
func DefaultEdgeBookmarksPath() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base, err := localAppData()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "Microsoft", "Edge", "User Data", "Default", "Bookmarks"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Microsoft Edge", "Default", "Bookmarks"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config", "microsoft-edge", "Default", "Bookmarks"), nil
	}
}

// DefaultFirefoxProfilesDir returns the directory Firefox keeps its
// profiles under for the current OS.
func DefaultFirefoxProfilesDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base, err := roamingAppData()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "Mozilla", "Firefox", "Profiles"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".mozilla", "firefox"), nil
	}
}

func localAppData() (string, error) {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "AppData", "Local"), nil
}

func roamingAppData() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "AppData", "Roaming"), nil
}
