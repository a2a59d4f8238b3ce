// Package cmd implements the CLI application to manage the expense datastore.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"xpense"
)

// Version is the version string reported by the version subcommand and
// the top-level --version flag.
const Version = "0.1.0"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "expenses")
	c.Register(&deleteCmd{}, "expenses")
	c.Register(&listCmd{}, "expenses")

	c.Register(&fmtCmd{}, "datastore")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datastoreFile = flag.String("f", xpense.DefaultDatastore, "Path to the datastore file (JSON format). Overrides XPENSE_FILE.")

// DatastorePath returns the configured datastore file path: the -f flag
// when given, then the XPENSE_FILE environment variable (a .env file
// loaded at startup can provide it), then the package default.
// Resolution happens at call time, after main has loaded the .env file.
func DatastorePath() string {
	if *datastoreFile != xpense.DefaultDatastore {
		return *datastoreFile
	}
	if p := os.Getenv("XPENSE_FILE"); p != "" {
		return p
	}
	return *datastoreFile
}

// InitDatastore ensures the datastore exists before any operation runs.
func InitDatastore() error {
	path := DatastorePath()
	created, err := xpense.Init(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Datastore initialized at '%s'\n", path)
	} else {
		fmt.Printf("Reading from datastore at '%s'\n", path)
	}
	return nil
}

// loadBook reads the whole datastore for a domain operation.
func loadBook() (*xpense.Book, error) {
	book, err := xpense.LoadBook(DatastorePath())
	if err != nil {
		return nil, err
	}
	log.Debug().Str("datastore", DatastorePath()).Int("expenses", book.Len()).Msg("datastore loaded")
	return book, nil
}

// saveBook overwrites the whole datastore after a mutation.
func saveBook(book *xpense.Book) error {
	if err := xpense.SaveBook(DatastorePath(), book); err != nil {
		return err
	}
	log.Debug().Str("datastore", DatastorePath()).Int("expenses", book.Len()).Msg("datastore saved")
	return nil
}

// flagsSet returns the names of the flags explicitly set on the command line.
func flagsSet(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// printMarkdown renders a markdown string for the terminal and prints it to stdout.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	// Without a usable terminal renderer the raw markdown is still readable.
	fmt.Println(markdown)
}
