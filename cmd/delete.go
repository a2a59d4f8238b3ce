package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id uint
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an existing expense given its id" }
func (*deleteCmd) Usage() string {
	return `xt delete -i <id>

  Removes the expense with the given id from the datastore. When the id
  is unknown the datastore is left untouched.

Usage Examples:
$ xt delete -i 2
Expense with ID: '2' deleted successfully

`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&p.id, "i", 0, "Id of the expense to delete.")
	f.UintVar(&p.id, "id", 0, "Alias for -i.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := flagsSet(f)
	if !set["i"] && !set["id"] {
		fmt.Fprintln(os.Stderr, "Error: -i <id> is required.")
		return subcommands.ExitUsageError
	}
	// Ids are 32-bit; a wider value must not silently truncate to one.
	if p.id > math.MaxUint32 {
		fmt.Fprintf(os.Stderr, "Error: id %d is out of range.\n", p.id)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !book.Remove(uint32(p.id)) {
		// Not an error: report and leave the datastore untouched.
		fmt.Printf("No expense found with ID: %d\n", p.id)
		return subcommands.ExitSuccess
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Expense with ID: '%d' deleted successfully\n", p.id)
	return subcommands.ExitSuccess
}
