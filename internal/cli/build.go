package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/pipeline"
)

// buildFlags holds the command-line flags for the build command.
type buildFlags struct {
	inputFlags
	output  string // output directory
	title   string // page title
	diagram bool   // render the influence diagram
	strict  bool   // fail when warnings were collected
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the dashboard",
		Long: `Build the dashboard into the output directory.

The build loads the metric definitions and CSV series, orders metrics into
tiers by their influence relationships, publishes content-hashed assets and
vendored modules, and writes index.html and manifest.json.

Hashed files from earlier builds are removed first. Missing series, assets
and modules are reported as warnings; use --strict to fail on them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			if cmd.Flags().Changed("output") {
				opts.OutputDir = flags.output
			}
			if cmd.Flags().Changed("title") {
				opts.Title = flags.title
			}
			if cmd.Flags().Changed("diagram") {
				opts.Diagram = flags.diagram
			}
			return c.runBuild(cmd.Context(), opts, flags.strict)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&flags.title, "title", "", "dashboard page title")
	cmd.Flags().BoolVar(&flags.diagram, "diagram", true, "render the influence diagram")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with an error when warnings were collected")

	return cmd
}

// runBuild executes the pipeline and prints a summary.
func (c *CLI) runBuild(ctx context.Context, opts pipeline.Options, strict bool) error {
	var spinner *Spinner
	if !c.verbose && isatty.IsTerminal(os.Stderr.Fd()) {
		spinner = newSpinner(ctx, os.Stderr, "Building dashboard...")
		spinner.Start()
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Built %s", StyleTitle.Render(opts.Title))
	printFile(c.Out, result.IndexPath)
	printFile(c.Out, result.ManifestPath)
	printStats(c.Out, result.Stats)
	printWarnings(c.Out, result.Warnings)

	if strict && len(result.Warnings) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%d warnings with --strict", len(result.Warnings))
	}
	printNextStep(c.Out, "Preview", fmt.Sprintf("python3 -m http.server -d %s", opts.OutputDir))
	return nil
}
