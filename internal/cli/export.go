package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/exporters"
)

// ExportCommand writes every stored bookmark to a CSV or JSON file.
type ExportCommand struct {
	DatabasePath string
	Format       string
	Output       string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.Format, "format", "csv", "Export format: csv or json")
	fs.StringVar(&cmd.Output, "output", "", "Output file (defaults to a timestamped name in the current directory)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the stored bookmarks to a file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -format json -output bookmarks.json\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	format, err := exporters.ParseFormat(cmd.Format)
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

	bookmarks, err := db.ListBookmarks()
	if err != nil {
		return fmt.Errorf("failed to list bookmarks: %w", err)
	}

	filename := cmd.Output
	if filename == "" {
		filename = exporters.DefaultFilename(format, time.Now())
	}

	if err := exporters.ExportToFile(filename, format, bookmarks); err != nil {
		return err
	}

	fmt.Printf("Bookmarks exported successfully to %s (%d bookmarks)\n", filename, len(bookmarks))
	return nil
}
