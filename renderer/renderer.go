// Package renderer turns books of expenses into markdown suitable for
// terminal display.
package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"xpense"
)

// Expenses renders the book as a markdown table with one row per
// expense, in insertion order. Amounts always carry two decimals.
func Expenses(b *xpense.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Description", "Amount"},
		Rows:   [][]string{},
	}
	for e := range b.Expenses() {
		table.Rows = append(table.Rows, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Description,
			e.Amount.StringFixed(2),
		})
	}
	doc.Table(table)

	return doc.String()
}
