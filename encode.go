package xpense

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeBook reads a whole datastore, a JSON array of expense records,
// from r. Malformed content surfaces as an error to the caller.
func DecodeBook(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read datastore: %w", err)
	}

	expenses := make([]Expense, 0)
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("could not decode datastore: %w", err)
	}
	return &Book{expenses: expenses}, nil
}

// EncodeBook writes the whole book to w as a JSON array. An empty book
// encodes as the literal "[]".
func EncodeBook(w io.Writer, b *Book) error {
	data, err := json.Marshal(b.expenses)
	if err != nil {
		return fmt.Errorf("could not encode datastore: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write datastore: %w", err)
	}
	return nil
}
