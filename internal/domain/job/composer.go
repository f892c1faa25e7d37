package job

import "github.com/honeycarbs/jobboard/internal/domain"

// Composer combines the facet and text predicates into the result set
type Composer struct {
	facets *FacetFilter
	search *Search
}

// NewComposer builds a Composer over the given engines
func NewComposer(facets *FacetFilter, search *Search) *Composer {
	return &Composer{facets: facets, search: search}
}

// Recompute filters all from scratch, keeping its order. The returned slice is never all itself.
func (c *Composer) Recompute(all []domain.Job) []domain.Job {
	out := make([]domain.Job, 0, len(all))
	for _, j := range all {
		if c.facets.Matches(j) && c.search.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}
