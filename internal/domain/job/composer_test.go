package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func TestComposerWithoutConstraintsReturnsEverything(t *testing.T) {
	jobs := sampleJobs(4)
	c := NewComposer(NewFacetFilter(), NewSearch())

	got := c.Recompute(jobs)
	assert.Equal(t, jobs, got)

	got[0].Title = "mutated"
	assert.Equal(t, "Engineer 1", jobs[0].Title, "result set must not alias the store")
}

func TestComposerIsIdempotent(t *testing.T) {
	jobs := sampleJobs(12)
	facets := NewFacetFilter()
	search := NewSearch()
	require.NoError(t, facets.Set(domain.CategoryLocations, []string{"Barcelona"}))
	search.SetQuery("engineer")

	c := NewComposer(facets, search)
	first := c.Recompute(jobs)
	assert.Equal(t, first, c.Recompute(jobs))
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, ids(first))
}
