package table

// DefaultPageWindow is how many page numbers the pager shows at once.
const DefaultPageWindow = 5

// PageWindow returns the page numbers to offer around current: all pages
// when there are at most width, otherwise width consecutive pages that start
// at 1 near the beginning, end at total near the end and are centred on
// current in between.
func PageWindow(current, total, width int) []int {
	if total <= 0 || width <= 0 {
		return []int{}
	}
	n := min(width, total)
	half := width / 2

	start := 1
	switch {
	case total <= width:
	case current <= half+1:
	case current >= total-half:
		start = total - width + 1
	default:
		start = current - half
	}

	pages := make([]int, n)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
