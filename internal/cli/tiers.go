package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/datanate/pkg/pipeline"
	"github.com/matzehuels/datanate/pkg/render/nodelink"
)

// tiersCommand creates the tiers command for inspecting the influence graph.
func (c *CLI) tiersCommand() *cobra.Command {
	var (
		flags    inputFlags
		dot      bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Print the tier of every metric",
		Long: `Print the tier of every metric, grouped as on the dashboard.

A metric nothing influences is in tier 0; any other metric sits one tier
below the deepest metric influencing it. Nothing is written to the output
directory.

With --dot the influence graph is printed in Graphviz DOT format instead,
one rank per tier:

  datanate tiers --dot | dot -Tsvg > influence.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			return c.runTiers(cmd.Context(), opts, dot, detailed)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dot, "dot", false, "print the influence graph as DOT")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include tier and category in DOT labels")

	return cmd
}

func (c *CLI) runTiers(ctx context.Context, opts pipeline.Options, dot, detailed bool) error {
	analysis, err := c.newRunner().Analyze(ctx, opts)
	if err != nil {
		return err
	}

	if dot {
		fmt.Fprint(c.Out, nodelink.ToDOT(analysis.Graph, nodelink.Options{Detailed: detailed}))
		return nil
	}

	if analysis.Registry.Len() == 0 {
		printInfo(c.Out, "No metrics defined")
		return nil
	}
	fmt.Fprintln(c.Out, tiersTable(analysis))
	printDetail(c.Out, "%s in %s", plural(analysis.Registry.Len(), "metric"), plural(analysis.TierCount(), "tier"))
	printWarnings(c.Out, analysis.Warnings)
	return nil
}
