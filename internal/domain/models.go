package domain

import (
	"errors"
	"fmt"
	"strings"
)

// JobID uniquely identifies a job within a feed
type JobID = int

// Job is the normalized job posting entity
type Job struct {
	ID           JobID    `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Contract     string   `json:"contract"`
	Experience   string   `json:"experience"`
}

// TechnologiesString joins technologies the way job cards carry them
func (j Job) TechnologiesString() string {
	return strings.Join(j.Technologies, ",")
}

// Category names a facet dimension
type Category string

const (
	CategoryTechnologies Category = "technologies"
	CategoryLocations    Category = "locations"
	CategoryContracts    Category = "contracts"
	CategoryExperiences  Category = "experiences"
)

// Categories lists every facet in display order
var Categories = []Category{
	CategoryTechnologies,
	CategoryLocations,
	CategoryContracts,
	CategoryExperiences,
}

// ErrUnknownCategory is returned for facet names outside Categories
var ErrUnknownCategory = errors.New("unknown facet category")

// ParseCategory resolves a user supplied facet name
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the four facets
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnologies, CategoryLocations, CategoryContracts, CategoryExperiences:
		return true
	}
	return false
}

// FilterState holds the selected values per facet; an empty slice means no constraint
type FilterState struct {
	Technologies []string `json:"technologies,omitempty"`
	Locations    []string `json:"locations,omitempty"`
	Contracts    []string `json:"contracts,omitempty"`
	Experiences  []string `json:"experiences,omitempty"`
}

// PageMeta is what pagination controls are built from
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// PageView is a snapshot of a browsing session
type PageView struct {
	Jobs       []Job       `json:"jobs"`
	Meta       PageMeta    `json:"meta"`
	TotalItems int         `json:"total_items"`
	Filters    FilterState `json:"filters"`
	Query      string      `json:"query,omitempty"`
}
