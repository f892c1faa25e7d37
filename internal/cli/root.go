package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/source"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// globals shared by every subcommand, filled in PersistentPreRunE
type globals struct {
	sourceURL string
	logLevel  string

	cfg    config.Config
	logger *logging.Logger
}

// NewRootCmd builds the jobs command tree
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "jobs",
		Short: "Browse a job list from the terminal",
		Long: `Browse a job list from the terminal.

Jobs come from the feed at JOBS_SOURCE_URL (or --source), or from Neo4j when
NEO4J_URI is set and --source is not given.

Examples:
  # First page of Go jobs in Madrid
  jobs list --tech Go --location Madrid

  # Technologies containing "script"
  jobs facets technologies script

  # Copy a feed into Neo4j
  jobs seed --source ./data.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if g.sourceURL != "" {
				cfg.Jobs.SourceURL = g.sourceURL
			}
			if g.logLevel != "" {
				cfg.LogLevel = g.logLevel
			}

			g.cfg = cfg
			g.logger = logging.NewConsole(cfg.LogLevel)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&g.sourceURL, "source", "",
		"Job feed URL or path (defaults to JOBS_SOURCE_URL)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "",
		"Log level: debug, info, warn or error (defaults to LOG_LEVEL)")

	root.AddCommand(newListCmd(g))
	root.AddCommand(newFacetsCmd(g))
	root.AddCommand(newSeedCmd(g))

	return root
}

// Execute runs the jobs command tree
func Execute() error {
	return NewRootCmd().Execute()
}

// jobSource honours an explicit --source over the configured graph
func (g *globals) jobSource(ctx context.Context) (job.Source, func(), error) {
	if g.sourceURL != "" {
		provider, err := source.NewFeed(g.cfg.Jobs.SourceURL, g.cfg.Jobs.FetchTimeout)
		if err != nil {
			return nil, nil, err
		}
		return source.WithTimeout(provider, g.cfg.Jobs.FetchTimeout), func() {}, nil
	}
	return source.New(ctx, g.cfg, g.logger)
}

// loadBrowser builds a browser rendering into p and loads it
func (g *globals) loadBrowser(ctx context.Context, p job.Presenter, pageSize int) (*job.Browser, func(), error) {
	src, cleanup, err := g.jobSource(ctx)
	if err != nil {
		return nil, nil, err
	}

	if pageSize <= 0 {
		pageSize = g.cfg.Jobs.PageSize
	}

	b, err := job.NewBrowser(
		job.WithSource(src),
		job.WithPresenter(p),
		job.WithPageSize(pageSize),
		job.WithLogger(g.logger),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return b, cleanup, b.Load(ctx)
}
