package listing

import (
	"fmt"

	"karirkit/internal/model"
)

// Pager is the view model of the pagination controls.
type Pager struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// NewPager normalises the API pagination block: at least one page, current
// page clamped into range.
func NewPager(p model.Pagination) Pager {
	pg := Pager{Page: p.Page, PerPage: p.PerPage, TotalItems: p.TotalItems, TotalPages: p.TotalPages}
	if pg.TotalPages < 1 {
		pg.TotalPages = 1
	}
	if pg.Page < 1 {
		pg.Page = 1
	}
	if pg.Page > pg.TotalPages {
		pg.Page = pg.TotalPages
	}
	return pg
}

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.TotalPages }
func (p Pager) Prev() int     { return max(p.Page-1, 1) }
func (p Pager) Next() int     { return min(p.Page+1, p.TotalPages) }

// Indicator renders "current / total".
func (p Pager) Indicator() string {
	return fmt.Sprintf("%d / %d", p.Page, p.TotalPages)
}

// Range returns the 1-based row numbers shown on this page, (0, 0) when empty.
func (p Pager) Range() (from, to int) {
	if p.TotalItems == 0 || p.PerPage <= 0 {
		return 0, 0
	}
	from = (p.Page-1)*p.PerPage + 1
	to = min(from+p.PerPage-1, p.TotalItems)
	return from, to
}

// Showing renders the row span, e.g. "11-20 dari 42".
func (p Pager) Showing() string {
	from, to := p.Range()
	if from == 0 {
		return "0 data"
	}
	return fmt.Sprintf("%d-%d dari %d", from, to, p.TotalItems)
}

// Window returns up to size page numbers centred on the current page.
func (p Pager) Window(size int) []int {
	if size < 1 {
		size = 1
	}
	start := p.Page - size/2
	start = max(start, 1)
	end := min(start+size-1, p.TotalPages)
	start = max(end-size+1, 1)

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
