package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobboard/internal/source"
	storage "github.com/honeycarbs/jobboard/internal/storage/neo4j"
	n4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

func newSeedCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the job feed into Neo4j",
		Long: `Fetch the job feed and store it in Neo4j, keeping feed order.

Jobs already in the graph but missing from the feed are removed, so the graph
serves exactly the feed.

Requires NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD.

Examples:
  jobs seed --source https://example.com/data.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !g.cfg.UseGraph() {
				return fmt.Errorf("seed: NEO4J_URI is not set")
			}

			ctx := cmd.Context()

			feed, err := source.NewFeed(g.cfg.Jobs.SourceURL, g.cfg.Jobs.FetchTimeout)
			if err != nil {
				return err
			}
			jobs, err := source.WithTimeout(feed, g.cfg.Jobs.FetchTimeout).FetchJobs(ctx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			client, err := n4j.NewClient(n4j.Config{
				URI:      g.cfg.Neo4j.URI,
				Username: g.cfg.Neo4j.Username,
				Password: g.cfg.Neo4j.Password,
				Database: g.cfg.Neo4j.Database,
			})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close(ctx) }()

			if err := storage.NewJobRepository(client).ReplaceJobs(ctx, jobs); err != nil {
				return err
			}

			g.logger.Info("jobs seeded", "count", len(jobs), "source", g.cfg.Jobs.SourceURL)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d job(s) into Neo4j\n", len(jobs))
			return nil
		},
	}
}
