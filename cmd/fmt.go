package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the datastore into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `xt fmt

  Validates and formats the datastore file. This command reads all
  expenses, checks the id invariants (positive, unique), sorts them by
  id, and writes them back in a canonical JSON form.

Usage Examples:
# Rewrites the default datastore file in place.
$ xt fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	formatted, err := book.Fmt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting datastore: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(formatted); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", DatastorePath())
	return subcommands.ExitSuccess
}
