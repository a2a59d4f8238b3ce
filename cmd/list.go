package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"xpense/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses" }
func (*listCmd) Usage() string {
	return `xt list

  Lists every expense in the datastore as a table, in the order they
  were recorded.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if book.IsEmpty() {
		fmt.Println("No expenses found")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Expenses(book))
	return subcommands.ExitSuccess
}
