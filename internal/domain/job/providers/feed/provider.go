package feed

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/jobfeed"
)

// feedClient describes the subset of the feed client used by the provider.
type feedClient interface {
	FetchJobs(ctx context.Context) ([]jobfeed.Job, error)
}

// Provider implements job.Source over a static JSON feed
type Provider struct {
	client feedClient
}

// NewProvider builds a feed provider
func NewProvider(client feedClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("feed provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "feed"
}

// FetchJobs loads the feed and returns normalized jobs
func (p *Provider) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("feed provider: client is nil")
	}

	feedJobs, err := p.client.FetchJobs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(feedJobs))
	for _, j := range feedJobs {
		out = append(out, domain.Job{
			ID:           j.ID,
			Title:        j.Title,
			Company:      j.Company,
			Location:     j.Location,
			Description:  j.Description,
			Technologies: j.Technologies,
			Contract:     j.Contract,
			Experience:   j.Experience,
		})
	}

	return out, nil
}

var _ jobdomain.Source = (*Provider)(nil)
