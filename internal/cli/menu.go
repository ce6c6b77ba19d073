package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/exporters"
	"github.com/PraxisPercival/Bookmarker/internal/services"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// MenuCommand runs the interactive terminal menu. Every menu action
// goes through the same database and sync service the other commands
// and the HTTP server use.
type MenuCommand struct {
	DatabasePath string
	ChromePath   string
	EdgePath     string
	FirefoxDir   string

	reader  *bufio.Reader
	db      *database.Database
	sources []tracker.Source
	service *services.SyncService
}

func NewMenuCommand() *MenuCommand {
	return &MenuCommand{}
}

func (cmd *MenuCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.ChromePath, "chrome", "", "Override path to the Chrome Bookmarks file")
	fs.StringVar(&cmd.EdgePath, "edge", "", "Override path to the Edge Bookmarks file")
	fs.StringVar(&cmd.FirefoxDir, "firefox", "", "Override path to the Firefox profiles directory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s menu [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the interactive bookmark tracker menu.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *MenuCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	cmd.db = db
	cmd.sources = newSources(cmd.ChromePath, cmd.EdgePath, cmd.FirefoxDir)
	cmd.service = services.NewSyncService(tracker.NewSyncer(db, cmd.sources...), db)
	cmd.reader = bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\nBookmark Tracker Menu:")
		fmt.Println("1. Sync bookmarks")
		fmt.Println("2. View all bookmarks")
		fmt.Println("3. View bookmarks by browser")
		fmt.Println("4. Add new bookmark")
		fmt.Println("5. Delete bookmark")
		fmt.Println("6. Export bookmarks")
		fmt.Println("7. List installed browsers")
		fmt.Println("8. Exit")

		choice, err := cmd.prompt("Enter your choice (1-8): ")
		if err != nil {
			// Stdin is gone; exit the same way choice 8 does.
			fmt.Println("Exiting...")
			return nil
		}

		switch choice {
		case "1":
			cmd.syncBookmarks()
		case "2":
			cmd.viewAllBookmarks()
		case "3":
			cmd.viewBookmarksByBrowser()
		case "4":
			cmd.addBookmark()
		case "5":
			cmd.deleteBookmark()
		case "6":
			cmd.exportBookmarks()
		case "7":
			cmd.listInstalledBrowsers()
		case "8":
			fmt.Println("Exiting...")
			return nil
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (cmd *MenuCommand) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := cmd.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// chooseBrowser lists the installed browsers and reads a selection.
// The false return means the prompt already printed what went wrong.
func (cmd *MenuCommand) chooseBrowser() (entities.Browser, bool) {
	installed := installedSources(cmd.sources)
	if len(installed) == 0 {
		fmt.Println("No browsers found!")
		return "", false
	}

	fmt.Println("\nAvailable browsers:")
	for i, source := range installed {
		fmt.Printf("%d. %s\n", i+1, source.Browser().DisplayName())
	}

	choice, err := cmd.prompt(fmt.Sprintf("Select browser (1-%d): ", len(installed)))
	if err != nil {
		return "", false
	}

	index, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Println("Please enter a valid number!")
		return "", false
	}
	if index < 1 || index > len(installed) {
		fmt.Println("Invalid browser selection!")
		return "", false
	}

	return installed[index-1].Browser(), true
}

func (cmd *MenuCommand) syncBookmarks() {
	fmt.Println("Syncing bookmarks...")

	_, report, err := cmd.service.Run(context.Background(), entities.SyncTriggerManual)
	if report != nil {
		fmt.Println(report.Summary())
	}
	if err != nil {
		fmt.Printf("Sync failed: %v\n", err)
		return
	}
	fmt.Println("Bookmarks synced successfully!")
}

func (cmd *MenuCommand) viewAllBookmarks() {
	bookmarks, err := cmd.db.ListBookmarks()
	if err != nil {
		fmt.Printf("Failed to list bookmarks: %v\n", err)
		return
	}

	fmt.Println("\nAll Bookmarks:")
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks stored yet.")
		return
	}
	printBookmarks(bookmarks)
}

func (cmd *MenuCommand) viewBookmarksByBrowser() {
	browser, ok := cmd.chooseBrowser()
	if !ok {
		return
	}

	bookmarks, err := cmd.db.ListBookmarksByBrowser(browser)
	if err != nil {
		fmt.Printf("Failed to list bookmarks: %v\n", err)
		return
	}

	fmt.Printf("\nBookmarks for %s:\n", browser.DisplayName())
	if len(bookmarks) == 0 {
		fmt.Println("No bookmarks stored for this browser.")
		return
	}
	printBookmarks(bookmarks)
}

func (cmd *MenuCommand) addBookmark() {
	browser, ok := cmd.chooseBrowser()
	if !ok {
		return
	}

	title, err := cmd.prompt("Enter bookmark title: ")
	if err != nil {
		return
	}
	url, err := cmd.prompt("Enter bookmark URL: ")
	if err != nil {
		return
	}
	folder, err := cmd.prompt("Enter folder (optional, press Enter to skip): ")
	if err != nil {
		return
	}

	if title == "" || url == "" {
		fmt.Println("Title and URL are required!")
		return
	}

	bookmark, err := cmd.db.AddBookmark(title, url, browser, folder)
	if err != nil {
		fmt.Printf("Failed to add bookmark: %v\n", err)
		return
	}
	fmt.Printf("Bookmark '%s' added successfully!\n", bookmark.Title)
}

func (cmd *MenuCommand) deleteBookmark() {
	input, err := cmd.prompt("Enter bookmark ID to delete: ")
	if err != nil {
		return
	}

	id, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		fmt.Println("Please enter a valid bookmark ID!")
		return
	}

	bookmark, err := cmd.db.GetBookmarkByID(uint(id))
	if err != nil {
		fmt.Printf("Failed to look up bookmark: %v\n", err)
		return
	}
	if bookmark == nil {
		fmt.Println("Bookmark not found!")
		return
	}

	if err := cmd.db.DeleteBookmark(uint(id)); err != nil {
		fmt.Printf("Failed to delete bookmark: %v\n", err)
		return
	}
	fmt.Println("Bookmark deleted successfully!")
}

func (cmd *MenuCommand) exportBookmarks() {
	fmt.Println("\nExport formats:")
	fmt.Println("1. CSV")
	fmt.Println("2. JSON")

	choice, err := cmd.prompt("Select format (1-2): ")
	if err != nil {
		return
	}

	var format exporters.Format
	switch choice {
	case "1":
		format = exporters.FormatCSV
	case "2":
		format = exporters.FormatJSON
	default:
		fmt.Println("Invalid format selection!")
		return
	}

	filename, err := cmd.prompt("Enter filename (optional, press Enter for default): ")
	if err != nil {
		return
	}
	if filename == "" {
		filename = exporters.DefaultFilename(format, time.Now())
	}

	bookmarks, err := cmd.db.ListBookmarks()
	if err != nil {
		fmt.Printf("Failed to list bookmarks: %v\n", err)
		return
	}

	if err := exporters.ExportToFile(filename, format, bookmarks); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Bookmarks exported successfully to %s\n", filename)
}

func (cmd *MenuCommand) listInstalledBrowsers() {
	installed := installedSources(cmd.sources)

	fmt.Println("\nInstalled browsers:")
	if len(installed) == 0 {
		fmt.Println("No browsers found!")
		return
	}
	for _, source := range installed {
		fmt.Printf("- %s\n", source.Browser().DisplayName())
	}
}
