package service

// Paginator tracks the current page over a list of known length.
// Pages are 1-based and there is always at least one page.
type Paginator struct {
	pageSize   int
	maxButtons int
	total      int
	current    int
}

func NewPaginator(pageSize, maxButtons int) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	if maxButtons <= 0 {
		maxButtons = 1
	}
	return &Paginator{
		pageSize:   pageSize,
		maxButtons: maxButtons,
		current:    1,
	}
}

// Reset sets the item count and returns to the first page.
func (p *Paginator) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.current = 1
}

// GoTo moves to page and reports whether it did. Pages outside 1..TotalPages are ignored.
func (p *Paginator) GoTo(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.current = page
	return true
}

func (p *Paginator) Next() bool {
	return p.GoTo(p.current + 1)
}

func (p *Paginator) Prev() bool {
	return p.GoTo(p.current - 1)
}

func (p *Paginator) Current() int {
	return p.current
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

func (p *Paginator) Total() int {
	return p.total
}

func (p *Paginator) TotalPages() int {
	pages := (p.total + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Bounds returns the half-open index range of the current page.
func (p *Paginator) Bounds() (start, end int) {
	start = (p.current - 1) * p.pageSize
	end = start + p.pageSize
	if start > p.total {
		start = p.total
	}
	if end > p.total {
		end = p.total
	}
	return start, end
}

// PageNumbers returns at most maxButtons consecutive page numbers, keeping the
// current page centred where the range allows it.
func (p *Paginator) PageNumbers() []int {
	totalPages := p.TotalPages()

	startPage, endPage := 1, totalPages
	if totalPages > p.maxButtons {
		startPage = max(1, p.current-p.maxButtons/2)
		endPage = startPage + p.maxButtons - 1
		if endPage > totalPages {
			endPage = totalPages
			startPage = max(1, endPage-p.maxButtons+1)
		}
	}

	pages := make([]int, 0, endPage-startPage+1)
	for i := startPage; i <= endPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Page returns the items of the paginator's current page.
func Page[T any](p *Paginator, items []T) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
