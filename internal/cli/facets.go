package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func newFacetsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "facets <category> [filter]",
		Short: "List the values a facet can take",
		Long: `List the distinct values of a facet in the loaded jobs.

Categories: technologies, locations, contracts, experiences.

Examples:
  jobs facets technologies
  jobs facets locations mad`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}

			var filter string
			if len(args) == 2 {
				filter = args[1]
			}

			b, cleanup, err := g.loadBrowser(cmd.Context(), nil, 0)
			if b == nil {
				return err
			}
			defer cleanup()
			if err != nil {
				return err
			}

			options, err := b.FacetOptions(category, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(options) == 0 {
				fmt.Fprintf(out, "No %s found\n", category)
				return nil
			}
			for _, o := range options {
				fmt.Fprintln(out, o)
			}
			return nil
		},
	}
}
