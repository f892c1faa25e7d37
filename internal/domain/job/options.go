package job

import (
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// FacetOptions lists the distinct values the loaded jobs carry for a category,
// in first-seen order, keeping those containing filter (case-insensitive).
func (b *Browser) FacetOptions(category domain.Category, filter string) ([]string, error) {
	if !category.Valid() {
		return nil, domain.ErrUnknownCategory
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	seen := make(map[string]struct{})
	out := []string{}

	for _, j := range b.store.All() {
		for _, v := range facetValues(category, j) {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if filter == "" || strings.Contains(strings.ToLower(v), filter) {
				out = append(out, v)
			}
		}
	}
	return out, nil
}
