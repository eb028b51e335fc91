package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophdash/internal/table"
)

var columnTitles = map[table.Field]string{
	table.FieldID:        "ID",
	table.FieldName:      "Name",
	table.FieldCategory:  "Category",
	table.FieldValue:     "Value",
	table.FieldStatus:    "Status",
	table.FieldCreatedAt: "Created",
}

// renderView writes v as an aligned table followed by the entry count and
// the pager.
func renderView(w io.Writer, v table.View) error {
	var sb strings.Builder

	if v.State.SearchTerm != "" {
		fmt.Fprintf(&sb, "Search: %q\n", v.State.SearchTerm)
	}

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	headers := make([]string, len(table.Fields))
	rules := make([]string, len(table.Fields))
	for i, f := range table.Fields {
		headers[i] = columnTitles[f] + " " + sortIndicator(v.State, f)
		rules[i] = strings.Repeat("-", len(columnTitles[f]))
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for _, r := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Category, r.FormattedValue(), r.Status, r.CreatedAt)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(v.Items) == 0 {
		sb.WriteString("No data found\n")
	}

	fmt.Fprintf(&sb, "Showing %d to %d of %d entries\n", v.From, v.To, v.Total)
	sb.WriteString(renderPager(v.State, v.TotalPages))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// sortIndicator mirrors the column header icons: unsorted columns show both
// arrows.
func sortIndicator(st table.ViewState, f table.Field) string {
	if st.SortField != f {
		return "↕"
	}
	if st.SortDirection == table.Asc {
		return "↑"
	}
	return "↓"
}

// renderPager draws "« ‹ 1 [2] 3 › »"; unavailable moves are blanked.
func renderPager(st table.ViewState, total int) string {
	current := st.CurrentPage
	first, prev, next, last := "«", "‹", "›", "»"
	if current <= 1 {
		first, prev = " ", " "
	}
	if current >= total {
		next, last = " ", " "
	}

	parts := []string{first, prev}
	for _, p := range table.PageWindow(current, total, table.DefaultPageWindow) {
		s := strconv.Itoa(p)
		if p == current {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	parts = append(parts, next, last)

	return fmt.Sprintf("Page %d of %d  %s  (%d per page)",
		current, total, strings.Join(parts, " "), st.ItemsPerPage)
}
