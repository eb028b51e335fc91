package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/filex"
	"github.com/dmitrijs2005/gophdash/internal/table"
	"gopkg.in/yaml.v3"
)

// ShowTable renders the current page.
func (a *App) ShowTable() error {
	return renderView(a.out, a.table.View())
}

// Search filters on the joined args; no args clears the filter. The view
// goes back to the first page.
func (a *App) Search(args []string) error {
	a.table.SetSearchTerm(strings.Join(args, " "))
	a.table.SetCurrentPage(1)
	return a.ShowTable()
}

// Sort advances the sort cycle of a column. An explicit direction
// ("asc", "desc" or "none") sets it directly.
func (a *App) Sort(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintln(a.out, "Usage: sort <id|name|category|value|status|created> [asc|desc|none]")
		return errUsage
	}

	field, err := table.ParseField(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if len(args) == 1 {
		a.table.SortData(field)
		return a.ShowTable()
	}

	dir, err := table.ParseDirection(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if dir == table.DirectionNone {
		field = table.FieldNone
	}
	a.table.SetSortField(field)
	a.table.SetSortDirection(dir)
	return a.ShowTable()
}

func (a *App) Page(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Invalid page number %q\n", args[0])
		return err
	}
	a.table.SetCurrentPage(n)
	return a.ShowTable()
}

func (a *App) Next() error {
	if st := a.table.State(); st.CurrentPage < a.table.TotalPages() {
		a.table.SetCurrentPage(st.CurrentPage + 1)
	}
	return a.ShowTable()
}

func (a *App) Prev() error {
	if st := a.table.State(); st.CurrentPage > 1 {
		a.table.SetCurrentPage(st.CurrentPage - 1)
	}
	return a.ShowTable()
}

func (a *App) First() error {
	a.table.SetCurrentPage(1)
	return a.ShowTable()
}

func (a *App) Last() error {
	a.table.SetCurrentPage(a.table.TotalPages())
	return a.ShowTable()
}

// Size changes the rows per page. The current page is pulled back onto the
// last page if it no longer exists.
func (a *App) Size(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: size <5|10|20|50>")
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !a.table.SetItemsPerPage(n) {
		fmt.Fprintf(a.out, "Page size must be one of %v\n", table.PageSizes)
		return errUsage
	}
	if total := a.table.TotalPages(); a.table.State().CurrentPage > total {
		a.table.SetCurrentPage(total)
	}
	return a.ShowTable()
}

// Export writes every row matching the current search, in the current sort
// order, to a file. The format follows the extension: .yaml/.yml for YAML,
// anything else JSON.
func (a *App) Export(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: export <file.json|file.yaml>")
		return errUsage
	}
	path := args[0]
	rows := a.table.FilteredItems()

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(rows)
	default:
		data, err = json.MarshalIndent(rows, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	if err := filex.WriteFileAtomic(path, data, 0o644); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Exported %d rows to %s\n", len(rows), path)
	return nil
}
