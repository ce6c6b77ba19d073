package cli

import (
	"flag"
	"fmt"
	"os"
)

// BrowsersCommand reports which supported browsers are installed.
type BrowsersCommand struct {
	ChromePath string
	EdgePath   string
	FirefoxDir string
}

func NewBrowsersCommand() *BrowsersCommand {
	return &BrowsersCommand{}
}

func (cmd *BrowsersCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("browsers", flag.ExitOnError)

	fs.StringVar(&cmd.ChromePath, "chrome", "", "Override path to the Chrome Bookmarks file")
	fs.StringVar(&cmd.EdgePath, "edge", "", "Override path to the Edge Bookmarks file")
	fs.StringVar(&cmd.FirefoxDir, "firefox", "", "Override path to the Firefox profiles directory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s browsers [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the supported browsers and where their bookmark files were found.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BrowsersCommand) Run() error {
	sources := newSources(cmd.ChromePath, cmd.EdgePath, cmd.FirefoxDir)

	fmt.Println("Installed browsers:")
	found := 0
	for _, source := range sources {
		path, err := source.BookmarksPath()
		if err != nil {
			continue
		}
		fmt.Printf("- %s: %s\n", source.Browser().DisplayName(), path)
		found++
	}

	if found == 0 {
		fmt.Println("No browsers found!")
	}
	return nil
}
