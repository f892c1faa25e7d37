package job

import "github.com/honeycarbs/jobboard/internal/domain"

// DefaultPageSize is the number of jobs shown per page
const DefaultPageSize = 5

// Paginator slices the result set into fixed-size pages.
// currentPage always stays within [1, max(1, TotalPages())].
type Paginator struct {
	jobs        []domain.Job
	pageSize    int
	currentPage int
}

// NewPaginator falls back to DefaultPageSize for non-positive sizes
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}
}

// SetResultSet stores a new result set and rewinds to the first page
func (p *Paginator) SetResultSet(jobs []domain.Job) {
	p.jobs = jobs
	p.currentPage = 1
}

// PageSize returns the fixed page size
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// CurrentPage returns the 1-based cursor
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// TotalItems returns the size of the result set
func (p *Paginator) TotalItems() int {
	return len(p.jobs)
}

// TotalPages is zero only for an empty result set
func (p *Paginator) TotalPages() int {
	return (len(p.jobs) + p.pageSize - 1) / p.pageSize
}

// CurrentPageItems returns the jobs of the current page
func (p *Paginator) CurrentPageItems() []domain.Job {
	start := (p.currentPage - 1) * p.pageSize
	if start < 0 || start >= len(p.jobs) {
		return []domain.Job{}
	}
	end := min(start+p.pageSize, len(p.jobs))
	return p.jobs[start:end:end]
}

// GoToPage moves the cursor. Out of range requests are ignored and report false.
func (p *Paginator) GoToPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.currentPage = n
	return true
}

// Meta describes the pagination controls
func (p *Paginator) Meta() domain.PageMeta {
	total := p.TotalPages()
	return domain.PageMeta{
		CurrentPage: p.currentPage,
		TotalPages:  total,
		HasPrev:     p.currentPage > 1,
		HasNext:     p.currentPage < total,
	}
}
