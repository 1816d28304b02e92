package model

// PageWindow describes one page of a server-paginated listing.
// PageIndex is 1-based; totals are server-reported.
// Invariant: TotalPages == ceil(TotalItems/PageSize), 1 <= PageIndex <= max(TotalPages,1).
type PageWindow struct {
	PageIndex  int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// FirstItemIndex is the 1-based position of the first item on the
// current page, for "showing X to Y of Z" display. Zero when empty.
func (w PageWindow) FirstItemIndex() int {
	if w.TotalItems == 0 {
		return 0
	}
	return (w.PageIndex-1)*w.PageSize + 1
}

// LastItemIndex is the 1-based position of the last item on the
// current page. Zero when empty.
func (w PageWindow) LastItemIndex() int {
	if w.TotalItems == 0 {
		return 0
	}
	last := w.PageIndex * w.PageSize
	if last > w.TotalItems {
		last = w.TotalItems
	}
	return last
}

// PagesFor computes ceil(totalItems/pageSize).
func PagesFor(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}
