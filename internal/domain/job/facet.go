package job

import (
	"fmt"
	"slices"
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// FacetFilter holds the selected values per facet category.
// Values combine with OR inside a category and with AND across categories.
type FacetFilter struct {
	selected map[domain.Category][]string
}

// NewFacetFilter returns a filter with no active facet
func NewFacetFilter() *FacetFilter {
	return &FacetFilter{selected: make(map[domain.Category][]string)}
}

// Set replaces the selection of one category. An empty selection clears it.
func (f *FacetFilter) Set(category domain.Category, values []string) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(cleaned, v) {
			continue
		}
		cleaned = append(cleaned, v)
	}

	if len(cleaned) == 0 {
		delete(f.selected, category)
		return nil
	}
	f.selected[category] = cleaned
	return nil
}

// Clear drops the selection of one category
func (f *FacetFilter) Clear(category domain.Category) error {
	return f.Set(category, nil)
}

// Reset drops every selection
func (f *FacetFilter) Reset() {
	clear(f.selected)
}

// Active reports whether any category constrains the result
func (f *FacetFilter) Active() bool {
	return len(f.selected) > 0
}

// State returns a copy of the current selection
func (f *FacetFilter) State() domain.FilterState {
	return domain.FilterState{
		Technologies: slices.Clone(f.selected[domain.CategoryTechnologies]),
		Locations:    slices.Clone(f.selected[domain.CategoryLocations]),
		Contracts:    slices.Clone(f.selected[domain.CategoryContracts]),
		Experiences:  slices.Clone(f.selected[domain.CategoryExperiences]),
	}
}

// Matches is pure: it only reads the selection and the job
func (f *FacetFilter) Matches(j domain.Job) bool {
	for category, values := range f.selected {
		if !matchesCategory(category, values, j) {
			return false
		}
	}
	return true
}

func matchesCategory(category domain.Category, values []string, j domain.Job) bool {
	switch category {
	case domain.CategoryTechnologies:
		for _, tech := range j.Technologies {
			if slices.Contains(values, strings.TrimSpace(tech)) {
				return true
			}
		}
		return false
	case domain.CategoryLocations:
		for _, v := range values {
			if MatchesLocation(j.Location, v) {
				return true
			}
		}
		return false
	case domain.CategoryContracts:
		return containsTrimmed(values, j.Contract)
	case domain.CategoryExperiences:
		return containsTrimmed(values, j.Experience)
	}
	return false
}

func containsTrimmed(values []string, attr string) bool {
	attr = strings.TrimSpace(attr)
	return attr != "" && slices.Contains(values, attr)
}

// facetValues returns the raw attribute values a job carries for a category
func facetValues(category domain.Category, j domain.Job) []string {
	switch category {
	case domain.CategoryTechnologies:
		return j.Technologies
	case domain.CategoryLocations:
		return []string{j.Location}
	case domain.CategoryContracts:
		return []string{j.Contract}
	case domain.CategoryExperiences:
		return []string{j.Experience}
	}
	return nil
}
