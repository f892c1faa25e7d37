package job

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Source represents the boundary the job list is fetched from (static feed, graph, etc.)
type Source interface {
	// e.g. "feed" or "neo4j"
	Name() string

	// FetchJobs returns the full, normalized job list
	FetchJobs(ctx context.Context) ([]domain.Job, error)
}

// Presenter renders what the browser computes. It is never read back.
type Presenter interface {
	Render(jobs []domain.Job)
	RenderPaginationControls(meta domain.PageMeta)

	// RenderFetchError shows the labeled empty state after a failed load
	RenderFetchError(err error)
}

type nopPresenter struct{}

func (nopPresenter) Render([]domain.Job) {}
func (nopPresenter) RenderPaginationControls(domain.PageMeta) {}
func (nopPresenter) RenderFetchError(error) {}
