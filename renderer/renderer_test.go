package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"xpense"
)

func TestExpenses(t *testing.T) {
	b := xpense.NewBook()
	b.Append("Coffee", decimal.NewFromFloat(9.5))
	b.Append("Book", decimal.NewFromFloat(12))

	got := Expenses(b)

	for _, want := range []string{"ID", "Description", "Amount"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expenses() output misses header %q:\n%s", want, got)
		}
	}

	// Amounts carry exactly two decimals, whatever the input precision.
	for _, want := range []string{"9.50", "12.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expenses() output misses amount %q:\n%s", want, got)
		}
	}

	// Rows follow insertion order.
	if strings.Index(got, "Coffee") > strings.Index(got, "Book") {
		t.Errorf("Expenses() output is not in insertion order:\n%s", got)
	}
}

func TestExpenses_Empty(t *testing.T) {
	got := Expenses(xpense.NewBook())

	// Only the header and delimiter rows remain.
	rows := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "|") {
			rows++
		}
	}
	if rows > 2 {
		t.Errorf("Expenses() of an empty book rendered data rows:\n%s", got)
	}
}
