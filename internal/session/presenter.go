package session

import (
	"github.com/honeycarbs/jobboard/internal/domain"
)

// PagePresenter keeps what a browser last rendered so transports can return it
type PagePresenter struct {
	jobs     []domain.Job
	meta     domain.PageMeta
	fetchErr error
}

// Render keeps the visible page
func (p *PagePresenter) Render(jobs []domain.Job) {
	p.jobs = jobs
}

// RenderPaginationControls keeps the page metadata
func (p *PagePresenter) RenderPaginationControls(meta domain.PageMeta) {
	p.meta = meta
}

// RenderFetchError keeps the load failure shown with the empty state
func (p *PagePresenter) RenderFetchError(err error) {
	p.fetchErr = err
}
