package job

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func TestPaginatorTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 4: 1, 5: 1, 6: 2, 10: 2, 11: 3, 12: 3}

	for items, pages := range cases {
		p := NewPaginator(5)
		p.SetResultSet(sampleJobs(items))
		assert.Equal(t, pages, p.TotalPages(), "%d items", items)
		assert.Equal(t, items, p.TotalItems())
	}
}

func TestPaginatorEmptyResultSet(t *testing.T) {
	p := NewPaginator(5)
	p.SetResultSet(nil)

	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, p.CurrentPageItems())
	assert.Equal(t, 1, p.CurrentPage())
	assert.False(t, p.GoToPage(1))
	assert.Equal(t, domain.PageMeta{CurrentPage: 1}, p.Meta())
}

func TestPaginatorGoToPage(t *testing.T) {
	jobs := sampleJobs(12)
	p := NewPaginator(5)
	p.SetResultSet(jobs)

	for _, n := range []int{0, -1, 4} {
		assert.False(t, p.GoToPage(n), "page %d", n)
		assert.Equal(t, 1, p.CurrentPage())
	}

	for n := 1; n <= 3; n++ {
		assert.True(t, p.GoToPage(n))
		start := (n - 1) * 5
		end := min(n*5, len(jobs))
		assert.Equal(t, jobs[start:end], p.CurrentPageItems())
	}

	assert.Equal(t, domain.PageMeta{CurrentPage: 3, TotalPages: 3, HasPrev: true, HasNext: false}, p.Meta())
}

func TestPaginatorSetResultSetRewinds(t *testing.T) {
	p := NewPaginator(5)
	p.SetResultSet(sampleJobs(12))
	p.GoToPage(3)

	p.SetResultSet(sampleJobs(12))
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, domain.PageMeta{CurrentPage: 1, TotalPages: 3, HasNext: true}, p.Meta())
}

func TestPaginatorDefaultPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).PageSize())
	assert.Equal(t, DefaultPageSize, NewPaginator(-3).PageSize())
	assert.Equal(t, 7, NewPaginator(7).PageSize())
}
