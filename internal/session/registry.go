package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// ErrSessionNotFound is returned for unknown or closed session ids
var ErrSessionNotFound = errors.New("session not found")

// Factory builds the browser of a new session around its presenter
type Factory func(p job.Presenter) (*job.Browser, error)

// Registry hosts independent browsing sessions
type Registry struct {
	factory Factory
	logger  *logging.Logger
	clock   func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty registry
func NewRegistry(factory Factory, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Registry{
		factory:  factory,
		logger:   logger.Named("sessions"),
		clock:    time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Open creates a session and loads its jobs. A failed load still yields a usable
// session whose page carries the fetch error.
func (r *Registry) Open(ctx context.Context) (*Session, error) {
	if r.factory == nil {
		return nil, fmt.Errorf("session: no browser factory configured")
	}

	presenter := &PagePresenter{}
	browser, err := r.factory(presenter)
	if err != nil {
		return nil, fmt.Errorf("session: build browser: %w", err)
	}

	s := &Session{
		ID:        uuid.New(),
		CreatedAt: r.clock(),
		browser:   browser,
		presenter: presenter,
	}

	if err := browser.Load(ctx); err != nil {
		r.logger.Warn("session opened without jobs", "session_id", s.ID, "err", err)
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Info("session opened", "session_id", s.ID)
	return s, nil
}

// Get looks a session up by its textual id
func (r *Registry) Get(id string) (*Session, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Close forgets a session
func (r *Registry) Close(id string) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.sessions, s.ID)
	r.mu.Unlock()

	r.logger.Info("session closed", "session_id", s.ID)
	return nil
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Session is one browser plus what it last rendered
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	browser   *job.Browser
	presenter *PagePresenter
}

// Do runs fn with exclusive access to the session's browser and returns the resulting page
func (s *Session) Do(fn func(b *job.Browser) error) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn != nil {
		if err := fn(s.browser); err != nil {
			return s.page(), err
		}
	}
	return s.page(), nil
}

// Page is the rendered state of a session
type Page struct {
	SessionID  string             `json:"session_id"`
	Jobs       []JobView          `json:"jobs"`
	Meta       domain.PageMeta    `json:"meta"`
	TotalItems int                `json:"total_items"`
	Filters    domain.FilterState `json:"filters"`
	Query      string             `json:"query,omitempty"`
	FetchError string             `json:"fetch_error,omitempty"`
}

// JobView is a rendered job card
type JobView struct {
	ID           domain.JobID `json:"id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
	Contract     string       `json:"contract"`
	Experience   string       `json:"experience"`
	Applied      bool         `json:"applied"`
}

func newJobView(j domain.Job, applied bool) JobView {
	techs := append([]string{}, j.Technologies...)
	return JobView{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Description:  j.Description,
		Technologies: techs,
		Contract:     j.Contract,
		Experience:   j.Experience,
		Applied:      applied,
	}
}

func (s *Session) page() Page {
	view := s.browser.View()

	jobs := make([]JobView, 0, len(s.presenter.jobs))
	for _, j := range s.presenter.jobs {
		jobs = append(jobs, newJobView(j, s.browser.Applied(j.ID)))
	}

	p := Page{
		SessionID:  s.ID.String(),
		Jobs:       jobs,
		Meta:       s.presenter.meta,
		TotalItems: view.TotalItems,
		Filters:    view.Filters,
		Query:      view.Query,
	}
	if s.presenter.fetchErr != nil {
		p.FetchError = s.presenter.fetchErr.Error()
	}
	return p
}
