package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/job/providers/feed"
	storage "github.com/honeycarbs/jobboard/internal/storage/neo4j"
	"github.com/honeycarbs/jobboard/pkg/jobfeed"
	"github.com/honeycarbs/jobboard/pkg/logging"
	n4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

// New picks the job source from config: the Neo4j graph when NEO4J_URI is set,
// the JSON feed otherwise. The returned cleanup releases the graph driver.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (job.Source, func(), error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	if cfg.UseGraph() {
		client, err := n4j.NewClient(n4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
			Database: cfg.Neo4j.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Neo4j job source initialized", "uri", cfg.Neo4j.URI)

		cleanup := func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Warn("failed to close Neo4j client", "err", err)
			}
		}
		return WithTimeout(storage.NewJobRepository(client), cfg.Jobs.FetchTimeout), cleanup, nil
	}

	provider, err := NewFeed(cfg.Jobs.SourceURL, cfg.Jobs.FetchTimeout)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("feed job source initialized", "url", cfg.Jobs.SourceURL)

	return WithTimeout(provider, cfg.Jobs.FetchTimeout), func() {}, nil
}

// NewFeed builds a feed provider reading url
func NewFeed(url string, timeout time.Duration) (*feed.Provider, error) {
	client, err := jobfeed.NewClient(jobfeed.Config{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return feed.NewProvider(client)
}

type timeoutSource struct {
	job.Source
	timeout time.Duration
}

// WithTimeout bounds every FetchJobs call of s; a non-positive timeout returns s unchanged
func WithTimeout(s job.Source, timeout time.Duration) job.Source {
	if timeout <= 0 {
		return s
	}
	return timeoutSource{Source: s, timeout: timeout}
}

func (t timeoutSource) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Source.FetchJobs(ctx)
}
