package telegram

import "math"

// Paginate computes the stored page index and the half-open slice bounds
// [start, end) after shifting the current page. The clamp rules are, in
// order: a negative target resets to page zero; a target that lands exactly
// past a full last page steps back one page; a target past the end keeps
// floor(total/perPage) as the page index while the slice start is still
// computed from the previous page number. In that last branch the stored
// page and the slice start intentionally diverge by one page; existing
// clients depend on it, so it is kept as-is.
func Paginate(current, shift, perPage, total int) (page, start, end int) {
	next := current + shift
	switch {
	case next < 0:
		page = 0
		start = 0
	case next*perPage == total:
		page = total/perPage - 1
		start = (next - 1) * perPage
	case next*perPage > total:
		page = total / perPage
		start = (next - 1) * perPage
	default:
		page = next
		start = next * perPage
	}
	return page, start, start + perPage
}

// TotalPages returns the number of pages needed to show total items.
func TotalPages(total, perPage int) int {
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// PageSlice clamps [start, end) to the list and returns the page's items.
func PageSlice[T any](items []T, start, end int) []T {
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
