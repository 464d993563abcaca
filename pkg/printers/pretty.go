// Package printers renders receipts for the terminal.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/catalog"
	"github.com/DiegoGarzaro/cookbook-2.0/pkg/receipt"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Summaries prints the (id, name) table for the catalog in sort order.
// An empty catalog gets the empty-cookbook notice instead of a bare
// table, so the user can tell "empty" from "nothing matched".
func (pp *PrettyPrint) Summaries(c *catalog.Catalog) {
	if c.Len() == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " the cookbook is empty!")
		return
	}

	pp.Title("[ID] Receipt name")

	tbl := uitable.New()
	tbl.Separator = " "
	for s := range c.Summaries() {
		tbl.AddRow("-", fmt.Sprintf("[%d]", s.ID), s.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Receipt prints a single receipt with its body.
func (pp *PrettyPrint) Receipt(r *receipt.Receipt) {
	t := color.New(color.Bold)
	_, _ = t.Fprintf(color.Output, "\n\t[%d] %s\n\n", r.ID, r.Name)
	_, _ = fmt.Fprintf(color.Output, "\t%s\n", r.Body)
}
