package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
)

// DeleteCommand removes one stored bookmark by ID.
type DeleteCommand struct {
	DatabasePath string
	ID           uint
}

func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	id := fs.Uint("id", 0, "ID of the bookmark to delete (required, see 'list')")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete one stored bookmark. The browser's own bookmarks are never\n")
		fmt.Fprintf(os.Stderr, "touched; a later sync will store the bookmark again if the browser\n")
		fmt.Fprintf(os.Stderr, "still has it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	cmd.ID = *id

	return nil
}

func (cmd *DeleteCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	bookmark, err := db.GetBookmarkByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to look up bookmark: %w", err)
	}
	if bookmark == nil {
		fmt.Println("Bookmark not found!")
		return nil
	}

	if err := db.DeleteBookmark(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	fmt.Printf("Bookmark '%s' deleted successfully!\n", bookmark.Title)
	return nil
}
