package job

import "github.com/honeycarbs/jobboard/internal/domain"

// Store holds the authoritative job list. It is filled once.
type Store struct {
	jobs   []domain.Job
	loaded bool
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{}
}

// Load replaces the contents with a private copy of jobs
func (s *Store) Load(jobs []domain.Job) {
	s.jobs = make([]domain.Job, len(jobs))
	for i, j := range jobs {
		j.Technologies = append([]string(nil), j.Technologies...)
		s.jobs[i] = j
	}
	s.loaded = true
}

// All returns the jobs in load order. Callers must not modify the slice.
func (s *Store) All() []domain.Job {
	return s.jobs
}

// Len returns the number of stored jobs
func (s *Store) Len() int {
	return len(s.jobs)
}

// Loaded reports whether Load has been called
func (s *Store) Loaded() bool {
	return s.loaded
}

// Find looks a job up by ID
func (s *Store) Find(id domain.JobID) (domain.Job, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Job{}, false
}
