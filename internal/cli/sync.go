package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PraxisPercival/Bookmarker/internal/browsers"
	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/database"
	"github.com/PraxisPercival/Bookmarker/internal/entities"
	"github.com/PraxisPercival/Bookmarker/internal/services"
	"github.com/PraxisPercival/Bookmarker/internal/tracker"
)

// SyncCommand scans the installed browsers and stores their bookmarks.
type SyncCommand struct {
	DatabasePath string
	ChromePath   string
	EdgePath     string
	FirefoxDir   string
	DryRun       bool
	Verbose      bool
}

func NewSyncCommand() *SyncCommand {
	return &SyncCommand{}
}

// newSources builds the scan list in its fixed order. Empty override
// paths mean the per-OS default locations.
func newSources(chromePath, edgePath, firefoxDir string) []tracker.Source {
	return []tracker.Source{
		browsers.NewChromeSource(chromePath),
		browsers.NewEdgeSource(edgePath),
		browsers.NewFirefoxSource(firefoxDir),
	}
}

// installedSources filters the scan list down to browsers whose
// bookmark file was actually found.
func installedSources(sources []tracker.Source) []tracker.Source {
	installed := make([]tracker.Source, 0, len(sources))
	for _, source := range sources {
		if _, err := source.BookmarksPath(); err == nil {
			installed = append(installed, source)
		}
	}
	return installed
}

func (cmd *SyncCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.ChromePath, "chrome", "", "Override path to the Chrome Bookmarks file")
	fs.StringVar(&cmd.EdgePath, "edge", "", "Override path to the Edge Bookmarks file")
	fs.StringVar(&cmd.FirefoxDir, "firefox", "", "Override path to the Firefox profiles directory")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would change without writing to the database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Scan Chrome, Edge and Firefox bookmark files and store every bookmark\n")
		fmt.Fprintf(os.Stderr, "in the local database. Browsers that are not installed are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Bookmarks are never deleted by a sync; removing one from a browser\n")
		fmt.Fprintf(os.Stderr, "leaves its stored copy in place.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sync\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sync -dry-run -verbose\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sync -db ~/bookmarks.db -firefox ~/.mozilla/firefox\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SyncCommand) Run() error {
	fmt.Println("Browser Sync")
	fmt.Println("============")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("Database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	sources := newSources(cmd.ChromePath, cmd.EdgePath, cmd.FirefoxDir)

	if cmd.Verbose {
		fmt.Println("\n=== Browsers ===")
		for _, source := range sources {
			path, err := source.BookmarksPath()
			if err != nil {
				fmt.Printf("  %s: not found\n", source.Browser().DisplayName())
				continue
			}
			fmt.Printf("  %s: %s\n", source.Browser().DisplayName(), path)
		}
	}

	syncer := tracker.NewSyncer(db, sources...)

	if cmd.DryRun {
		syncer.DryRun = true
		report, err := syncer.Run(context.Background())
		fmt.Println("\n" + report.Summary())
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Println("\nDry run complete. Use without -dry-run to sync.")
		return nil
	}

	service := services.NewSyncService(syncer, db)
	run, report, err := service.Run(context.Background(), entities.SyncTriggerManual)
	if report != nil {
		fmt.Println("\n" + report.Summary())
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("\nSync complete! (run %s)\n", run.RunID)
	return nil
}
