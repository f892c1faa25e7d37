package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

var (
	// ErrFetchFailure marks a job source that could not deliver the list
	ErrFetchFailure = errors.New("job fetch failed")
	// ErrAlreadyLoaded is returned by a second Load; retrying means starting a new session
	ErrAlreadyLoaded = errors.New("jobs already loaded")

	// ErrJobNotFound is returned by Apply for ids outside the loaded list
	ErrJobNotFound = errors.New("job not found")
	// ErrAlreadyApplied is returned by a second Apply for the same job
	ErrAlreadyApplied = errors.New("already applied to job")
)

// Option configures Browser
type Option func(*config)

type config struct {
	source    Source
	presenter Presenter
	pageSize  int
	logger    *logging.Logger
}

// WithSource sets the job source
func WithSource(source Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithPresenter sets the presentation adapter
func WithPresenter(p Presenter) Option {
	return func(c *config) {
		c.presenter = p
	}
}

// WithPageSize sets the number of jobs per page
func WithPageSize(size int) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Browser is the composition root of one browsing session. It owns the state of
// every component and is the only place events mutate it. It is not safe for
// concurrent use.
type Browser struct {
	source    Source
	presenter Presenter
	logger    *logging.Logger

	store     *Store
	facets    *FacetFilter
	search    *Search
	composer  *Composer
	paginator *Paginator

	applied map[domain.JobID]struct{}
}

// NewBrowser builds a Browser from options
func NewBrowser(opts ...Option) (*Browser, error) {
	cfg := &config{
		presenter: nopPresenter{},
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("job.Browser: source is required")
	}
	if cfg.pageSize <= 0 {
		return nil, fmt.Errorf("job.Browser: page size must be positive, got %d", cfg.pageSize)
	}
	if cfg.presenter == nil {
		cfg.presenter = nopPresenter{}
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	facets := NewFacetFilter()
	search := NewSearch()

	return &Browser{
		source:    cfg.source,
		presenter: cfg.presenter,
		logger:    cfg.logger.With("source", cfg.source.Name()),
		store:     NewStore(),
		facets:    facets,
		search:    search,
		composer:  NewComposer(facets, search),
		paginator: NewPaginator(cfg.pageSize),
		applied:   make(map[domain.JobID]struct{}),
	}, nil
}

// Load fetches the job list once and renders the first page.
// On failure the session keeps an empty list and the presenter shows the error state.
func (b *Browser) Load(ctx context.Context) error {
	if b.store.Loaded() {
		return ErrAlreadyLoaded
	}

	jobs, err := b.source.FetchJobs(ctx)
	if err != nil {
		b.store.Load(nil)
		b.refresh()
		b.presenter.RenderFetchError(err)
		b.logger.Warn("job fetch failed", "err", err)
		return fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	b.store.Load(jobs)
	b.refresh()
	b.logger.Info("jobs loaded", "count", b.store.Len())
	return nil
}

// ApplyFacet replaces the selection of one facet
func (b *Browser) ApplyFacet(category domain.Category, values []string) error {
	if err := b.facets.Set(category, values); err != nil {
		return err
	}
	b.logger.Debug("facet applied", "category", category, "values", values)
	b.refresh()
	return nil
}

// ClearFacet drops the selection of one facet
func (b *Browser) ClearFacet(category domain.Category) error {
	if err := b.facets.Clear(category); err != nil {
		return err
	}
	b.logger.Debug("facet cleared", "category", category)
	b.refresh()
	return nil
}

// SearchInput supersedes the previous query
func (b *Browser) SearchInput(text string) {
	b.search.SetQuery(text)
	b.refresh()
}

// ClearAll drops every facet and the query, restoring the full list
func (b *Browser) ClearAll() {
	b.facets.Reset()
	b.search.SetQuery("")
	b.refresh()
}

// PageClick navigates without touching the result set.
// It reports false, and renders nothing, for out of range pages.
func (b *Browser) PageClick(n int) bool {
	if !b.paginator.GoToPage(n) {
		b.logger.Debug("page request ignored", "page", n, "total_pages", b.paginator.TotalPages())
		return false
	}
	b.render()
	return true
}

// View snapshots the session
func (b *Browser) View() domain.PageView {
	return domain.PageView{
		Jobs:       b.paginator.CurrentPageItems(),
		Meta:       b.paginator.Meta(),
		TotalItems: b.paginator.TotalItems(),
		Filters:    b.facets.State(),
		Query:      b.search.Query(),
	}
}

// Results returns the whole current result set, not only the visible page
func (b *Browser) Results() []domain.Job {
	return b.composer.Recompute(b.store.All())
}

// Apply marks a job as applied for the rest of the session
func (b *Browser) Apply(id domain.JobID) error {
	if _, ok := b.store.Find(id); !ok {
		return fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	if _, ok := b.applied[id]; ok {
		return fmt.Errorf("%w: %d", ErrAlreadyApplied, id)
	}
	b.applied[id] = struct{}{}
	return nil
}

// Applied reports whether Apply succeeded for id
func (b *Browser) Applied(id domain.JobID) bool {
	_, ok := b.applied[id]
	return ok
}

func (b *Browser) refresh() {
	b.paginator.SetResultSet(b.composer.Recompute(b.store.All()))
	b.render()
}

func (b *Browser) render() {
	b.presenter.Render(b.paginator.CurrentPageItems())
	b.presenter.RenderPaginationControls(b.paginator.Meta())
}
