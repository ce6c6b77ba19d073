package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
)

// AddCommand stores one manually entered bookmark.
type AddCommand struct {
	DatabasePath string
	Title        string
	URL          string
	Browser      string
	Folder       string
}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.Title, "title", "", "Bookmark title (required)")
	fs.StringVar(&cmd.URL, "url", "", "Bookmark URL (required)")
	fs.StringVar(&cmd.Browser, "browser", "", "Browser to file the bookmark under: chrome, edge or firefox (required)")
	fs.StringVar(&cmd.Folder, "folder", "", "Folder path, e.g. \"Bookmarks bar/Dev\"")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -title <title> -url <url> -browser <browser> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a bookmark without touching any browser. Adding a URL that is\n")
		fmt.Fprintf(os.Stderr, "already stored for the same browser and folder refreshes its title.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add -title \"Go\" -url https://go.dev -browser chrome\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s add -title \"HN\" -url https://news.ycombinator.com -browser firefox -folder News\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Title == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if cmd.URL == "" {
		return fmt.Errorf("required flag -url not provided")
	}
	if cmd.Browser == "" {
		return fmt.Errorf("required flag -browser not provided")
	}

	return nil
}

func (cmd *AddCommand) Run() error {
	browser, err := entities.ParseBrowser(cmd.Browser)
	if err != nil {
		return err
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	bookmark, err := db.AddBookmark(cmd.Title, cmd.URL, browser, cmd.Folder)
	if err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}

	fmt.Printf("Bookmark '%s' added successfully! (ID: %d)\n", bookmark.Title, bookmark.ID)
	return nil
}
