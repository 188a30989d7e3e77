package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateForward(t *testing.T) {
	// 7 items, 3 per page: pages 0..2.
	page, start, end := Paginate(0, 0, 3, 7)
	assert.Equal(t, 0, page)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	page, start, _ = Paginate(page, 1, 3, 7)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, start)

	page, start, _ = Paginate(page, 1, 3, 7)
	assert.Equal(t, 2, page)
	assert.Equal(t, 6, start)

	// Shifting past the end clamps to the last page.
	page, start, _ = Paginate(page, 1, 3, 7)
	assert.Equal(t, 2, page)
	assert.Equal(t, 6, start)
}

func TestPaginateBackwardStopsAtZero(t *testing.T) {
	page, start, _ := Paginate(0, -1, 3, 7)
	assert.Equal(t, 0, page)
	assert.Equal(t, 0, start)
}

func TestPaginateExactBoundary(t *testing.T) {
	// 6 items, 3 per page: shifting from page 1 to page 2 lands exactly past
	// a full last page and steps back.
	page, start, _ := Paginate(1, 1, 3, 6)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, start)
}

func TestPaginateOverflowKeepsDivergentPage(t *testing.T) {
	// 4 items, 3 per page, shift from page 1 past the end. The stored page
	// index and the slice start diverge by one page; both are part of the
	// contract.
	page, start, _ := Paginate(1, 1, 3, 4)
	assert.Equal(t, 1, page)
	assert.Equal(t, 3, start)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(7, 3))
	assert.Equal(t, 2, TotalPages(6, 3))
	assert.Equal(t, 1, TotalPages(1, 3))
}

func TestPageSliceClamps(t *testing.T) {
	items := []int{1, 2, 3, 4}
	assert.Equal(t, []int{4}, PageSlice(items, 3, 6))
	assert.Equal(t, []int{1, 2, 3}, PageSlice(items, 0, 3))
	assert.Empty(t, PageSlice(items, 6, 9))
}
