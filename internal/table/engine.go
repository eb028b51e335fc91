package table

import (
	"slices"

	"github.com/dmitrijs2005/gophdash/internal/models"
)

// Page sizes offered by the table.
var PageSizes = []int{5, 10, 20, 50}

const (
	DefaultPageSize = 10
	firstPage       = 1
)

// ViewState holds the user-adjustable parameters of the table.
type ViewState struct {
	SearchTerm    string
	SortField     Field
	SortDirection Direction
	CurrentPage   int
	ItemsPerPage  int
}

// View is the derived result for one ViewState.
type View struct {
	State ViewState
	// Items is the current page.
	Items []models.Record
	// Total is the number of records matching the search term.
	Total      int
	TotalPages int
	// From and To are the 1-based positions of the first and last item on
	// the page, both 0 when the page is empty.
	From int
	To   int
}

// Engine owns the record set and the view state. It is not safe for
// concurrent use.
type Engine struct {
	records []models.Record
	state   ViewState
}

type EngineOption func(*Engine)

// WithPageSize sets the initial page size; unsupported sizes are ignored.
func WithPageSize(size int) EngineOption {
	return func(e *Engine) { e.SetItemsPerPage(size) }
}

// NewEngine takes a private copy of records.
func NewEngine(records []models.Record, opts ...EngineOption) *Engine {
	e := &Engine{
		records: slices.Clone(records),
		state: ViewState{
			CurrentPage:  firstPage,
			ItemsPerPage: DefaultPageSize,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Records() []models.Record {
	return slices.Clone(e.records)
}

func (e *Engine) State() ViewState {
	return e.state
}

func (e *Engine) SetSearchTerm(term string) {
	e.state.SearchTerm = term
}

// SetItemsPerPage reports whether size is one of PageSizes. The current page
// is left alone even if it is now out of range.
func (e *Engine) SetItemsPerPage(size int) bool {
	if !slices.Contains(PageSizes, size) {
		return false
	}
	e.state.ItemsPerPage = size
	return true
}

// SetCurrentPage moves to page; values below 1 select the first page.
func (e *Engine) SetCurrentPage(page int) {
	e.state.CurrentPage = max(page, firstPage)
}

func (e *Engine) SetSortField(f Field) {
	e.state.SortField = f
}

func (e *Engine) SetSortDirection(d Direction) {
	e.state.SortDirection = d
}

// SortData advances the sort cycle for f: a new field sorts ascending, the
// same field goes asc -> desc -> unsorted.
func (e *Engine) SortData(f Field) {
	if e.state.SortField != f {
		e.state.SortField = f
		e.state.SortDirection = Asc
		return
	}
	switch e.state.SortDirection {
	case Asc:
		e.state.SortDirection = Desc
	case Desc:
		e.state.SortField = FieldNone
		e.state.SortDirection = DirectionNone
	default:
		e.state.SortDirection = Asc
	}
}

// FilteredItems is the searched and sorted sequence before pagination.
func (e *Engine) FilteredItems() []models.Record {
	return Sort(Filter(e.records, e.state.SearchTerm), e.state.SortField, e.state.SortDirection)
}

func (e *Engine) DisplayedItems() []models.Record {
	return Paginate(e.FilteredItems(), e.state.CurrentPage, e.state.ItemsPerPage)
}

func (e *Engine) TotalPages() int {
	return TotalPages(len(Filter(e.records, e.state.SearchTerm)), e.state.ItemsPerPage)
}

// View runs the whole pipeline once.
func (e *Engine) View() View {
	filtered := e.FilteredItems()
	items := Paginate(filtered, e.state.CurrentPage, e.state.ItemsPerPage)

	v := View{
		State:      e.state,
		Items:      items,
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), e.state.ItemsPerPage),
	}
	if len(items) > 0 {
		v.From = (e.state.CurrentPage-1)*e.state.ItemsPerPage + 1
		v.To = v.From + len(items) - 1
	}
	return v
}
