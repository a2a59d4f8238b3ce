package xpense

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Expense is a single tracked monetary entry.
type Expense struct {
	ID          uint32          `json:"id"`          // ID is the unique identifier, assigned on creation.
	Description string          `json:"description"` // Description is free-form, user-supplied text.
	Amount      decimal.Decimal `json:"amount"`      // Amount is the monetary value, unconstrained in sign.
}

// Equal reports whether two expenses have the same id, description and amount.
func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID && e.Description == o.Description && e.Amount.Equal(o.Amount)
}

// Book holds the ordered set of expenses from a datastore.
//
// In a Book expenses are always in insertion order, which is also the
// on-disk order.
type Book struct {
	expenses []Expense
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{expenses: make([]Expense, 0)}
}

// Expenses iterates over the expenses in insertion order.
func (b *Book) Expenses() iter.Seq[Expense] {
	return slices.Values(b.expenses)
}

// Len returns the number of expenses in the book.
func (b *Book) Len() int { return len(b.expenses) }

// IsEmpty reports whether the book holds no expense.
func (b *Book) IsEmpty() bool { return len(b.expenses) == 0 }

// NextID returns the identifier the next expense will receive: one past
// the highest id currently in use, or 1 for an empty book. Deleting the
// highest expense makes its id available again; ids are not a monotonic
// counter.
func (b *Book) NextID() uint32 {
	var max uint32
	for _, e := range b.expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Append records a new expense with the given description and amount,
// assigns it the next free id, and returns it.
func (b *Book) Append(description string, amount decimal.Decimal) Expense {
	e := Expense{ID: b.NextID(), Description: description, Amount: amount}
	b.expenses = append(b.expenses, e)
	return e
}

// Remove deletes the expense with the given id and reports whether it
// was present. The book is left untouched when the id is unknown.
func (b *Book) Remove(id uint32) bool {
	n := len(b.expenses)
	b.expenses = slices.DeleteFunc(b.expenses, func(e Expense) bool { return e.ID == id })
	return len(b.expenses) != n
}

// Validate checks the book invariants: every id is positive and unique.
func (b *Book) Validate() error {
	seen := make(map[uint32]struct{}, len(b.expenses))
	for _, e := range b.expenses {
		if e.ID == 0 {
			return fmt.Errorf("invalid expense %q: id must be positive", e.Description)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate expense id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Fmt validates the book and returns a canonical copy of it, with
// expenses sorted by id.
func (b *Book) Fmt() (*Book, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	sorted := slices.Clone(b.expenses)
	slices.SortFunc(sorted, func(x, y Expense) int { return cmp.Compare(x.ID, y.ID) })
	return &Book{expenses: sorted}, nil
}
