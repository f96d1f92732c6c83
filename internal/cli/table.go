package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// render writes the current page of the list view as an aligned table,
// followed by the pagination summary.
func (p *page[T]) render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "ID")
	for _, col := range p.schema.Columns {
		fmt.Fprintf(tw, "\t%s", col.Title)
	}
	fmt.Fprintln(tw)

	for _, row := range p.view.Page() {
		fmt.Fprintf(tw, "%d", p.schema.ID(row))
		for _, col := range p.schema.Columns {
			fmt.Fprintf(tw, "\t%s", col.Value(row))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	page, pages, total := p.view.PageInfo()
	if q := p.view.Query(); q != "" {
		fmt.Fprintf(w, "page %d/%d (%d rows, filter %q)\n", page, pages, total, q)
		return
	}
	fmt.Fprintf(w, "page %d/%d (%d rows)\n", page, pages, total)
}
