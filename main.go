package main

import (
	"fmt"
	"os"

	"github.com/PraxisPercival/Bookmarker/internal/cli"
	"github.com/PraxisPercival/Bookmarker/internal/config"
	"github.com/PraxisPercival/Bookmarker/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "sync":
		cmd = cli.NewSyncCommand()
	case "list":
		cmd = cli.NewListCommand()
	case "browsers":
		cmd = cli.NewBrowsersCommand()
	case "export":
		cmd = cli.NewExportCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "delete":
		cmd = cli.NewDeleteCommand()
	case "menu":
		cmd = cli.NewMenuCommand()

	case "version":
		fmt.Printf("bookmarker %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  sync      Scan installed browsers and store their bookmarks\n")
	fmt.Fprintf(os.Stderr, "  list      Print stored bookmarks\n")
	fmt.Fprintf(os.Stderr, "  browsers  List installed browsers and their bookmark files\n")
	fmt.Fprintf(os.Stderr, "  export    Export stored bookmarks to CSV or JSON\n")
	fmt.Fprintf(os.Stderr, "  add       Store a bookmark manually\n")
	fmt.Fprintf(os.Stderr, "  delete    Delete a stored bookmark by ID\n")
	fmt.Fprintf(os.Stderr, "  menu      Run the interactive terminal menu\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
