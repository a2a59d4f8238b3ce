package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	description string
	amount      float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `xt add -d <description> -a <amount>

  Records a new expense in the datastore. The id is assigned
  automatically, one past the highest id in use.

Usage Examples:
$ xt add -d "Coffee" -a 3.5
Expense added successfully with ID: 1

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Description of the expense.")
	f.StringVar(&p.description, "description", "", "Alias for -d.")
	f.Float64Var(&p.amount, "a", 0, "Amount of the expense.")
	f.Float64Var(&p.amount, "amount", 0, "Alias for -a.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := flagsSet(f)
	if !set["d"] && !set["description"] {
		fmt.Fprintln(os.Stderr, "Error: -d <description> is required.")
		return subcommands.ExitUsageError
	}
	if !set["a"] && !set["amount"] {
		fmt.Fprintln(os.Stderr, "Error: -a <amount> is required.")
		return subcommands.ExitUsageError
	}
	// The flag parser accepts Inf and NaN, but they have no decimal form.
	if math.IsInf(p.amount, 0) || math.IsNaN(p.amount) {
		fmt.Fprintln(os.Stderr, "Error: amount must be a finite number.")
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The amount is accepted as-is: zero and negative values are valid.
	e := book.Append(p.description, decimal.NewFromFloat(p.amount))

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Expense added successfully with ID: %d\n", e.ID)
	return subcommands.ExitSuccess
}
