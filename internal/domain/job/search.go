package job

import (
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Search holds the free-text query
type Search struct {
	query string
}

// NewSearch returns a search with an empty query
func NewSearch() *Search {
	return &Search{}
}

// SetQuery stores a case-folded, trimmed copy of text
func (s *Search) SetQuery(text string) {
	s.query = strings.ToLower(strings.TrimSpace(text))
}

// Query returns the normalized query
func (s *Search) Query() string {
	return s.query
}

// Matches is a plain substring test over title, company, description and technologies
func (s *Search) Matches(j domain.Job) bool {
	if s.query == "" {
		return true
	}

	for _, field := range []string{j.Title, j.Company, j.Description, j.TechnologiesString()} {
		if strings.Contains(strings.ToLower(field), s.query) {
			return true
		}
	}
	return false
}
