package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// ListCommand prints stored bookmarks, optionally for one browser.
type ListCommand struct {
	DatabasePath string
	Browser      string
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.Browser, "browser", "", "Only list bookmarks from one browser (chrome, edge or firefox)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the stored bookmarks, ordered by browser, folder and title.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -browser firefox\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	var bookmarks []entities.Bookmark
	if cmd.Browser == "" {
		fmt.Println("All Bookmarks:")
		bookmarks, err = db.ListBookmarks()
	} else {
		var browser entities.Browser
		browser, err = entities.ParseBrowser(cmd.Browser)
		if err != nil {
			return err
		}
		fmt.Printf("Bookmarks for %s:\n", browser.DisplayName())
		bookmarks, err = db.ListBookmarksByBrowser(browser)
	}
	if err != nil {
		return fmt.Errorf("failed to list bookmarks: %w", err)
	}

	if len(bookmarks) == 0 {
		fmt.Println("\nNo bookmarks stored yet. Run 'sync' first.")
		return nil
	}

	printBookmarks(bookmarks)
	fmt.Printf("\nTotal: %d bookmarks\n", len(bookmarks))
	return nil
}

func printBookmarks(bookmarks []entities.Bookmark) {
	for i := range bookmarks {
		bookmark := &bookmarks[i]
		fmt.Printf("\nID: %d\n", bookmark.ID)
		fmt.Printf("Title: %s\n", bookmark.Title)
		fmt.Printf("URL: %s\n", bookmark.URL)
		fmt.Printf("Browser: %s\n", bookmark.Browser.DisplayName())
		fmt.Printf("Folder: %s\n", bookmark.FolderPath)
		fmt.Printf("Added: %s\n", bookmark.FirstSeen.Format("2006-01-02 15:04:05"))
		fmt.Printf("Last Updated: %s\n", bookmark.LastUpdated.Format("2006-01-02 15:04:05"))
		fmt.Println(strings.Repeat("-", 50))
	}
}
