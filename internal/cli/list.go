package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobboard/internal/domain"
)

type listOptions struct {
	technologies []string
	locations    []string
	contracts    []string
	experiences  []string
	query        string
	page         int
	pageSize     int
}

func newListCmd(g *globals) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of jobs",
		Long: `Print one page of jobs narrowed by facets and a search query.

Values of one facet are alternatives; different facets must all match.

Examples:
  jobs list --tech Go --tech Rust
  jobs list --location madrid --contract Indefinido --query backend --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, g, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.technologies, "tech", nil, "Technology facet value (repeatable)")
	cmd.Flags().StringSliceVar(&opts.locations, "location", nil, "Location facet value (repeatable)")
	cmd.Flags().StringSliceVar(&opts.contracts, "contract", nil, "Contract facet value (repeatable)")
	cmd.Flags().StringSliceVar(&opts.experiences, "experience", nil, "Experience facet value (repeatable)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Free-text search")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page to show")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Jobs per page (defaults to JOBS_PAGE_SIZE)")

	return cmd
}

func runList(cmd *cobra.Command, g *globals, opts *listOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	presenter := &termPresenter{}
	b, cleanup, err := g.loadBrowser(ctx, presenter, opts.pageSize)
	if b == nil {
		return err
	}
	defer cleanup()

	// a failed load still prints the empty state
	if err != nil {
		presenter.print(out, b.Applied)
		return err
	}

	facets := map[domain.Category][]string{
		domain.CategoryTechnologies: opts.technologies,
		domain.CategoryLocations:    opts.locations,
		domain.CategoryContracts:    opts.contracts,
		domain.CategoryExperiences:  opts.experiences,
	}
	for _, category := range domain.Categories {
		if len(facets[category]) == 0 {
			continue
		}
		if err := b.ApplyFacet(category, facets[category]); err != nil {
			return err
		}
	}

	if opts.query != "" {
		b.SearchInput(opts.query)
	}

	if opts.page != 1 && !b.PageClick(opts.page) {
		fmt.Fprintf(out, "Page %d is out of range, showing page %d\n\n", opts.page, b.View().Meta.CurrentPage)
	}

	presenter.print(out, b.Applied)
	return nil
}
