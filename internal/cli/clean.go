package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/datanate/pkg/assets"
)

// cleanCommand creates the clean command for removing hashed artifacts.
func (c *CLI) cleanCommand() *cobra.Command {
	var (
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove hashed artifacts from the output directory",
		Long: `Remove hashed artifacts from the output directory.

Deletes files named <name>-<hash>.<ext> under assets/ and directories named
<module>-<hash> under the vendor directory. Other files are left alone.
Builds do this automatically before publishing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				opts.OutputDir = output
			}
			opts.SetDefaults()

			prog := newProgress(c.Logger)
			removed, err := assets.Clean(opts.OutputDir, opts.VendorDir)
			if err != nil {
				return err
			}
			prog.done("cleaned " + opts.OutputDir)

			if len(removed) == 0 {
				printInfo(c.Out, "Nothing to remove in %s", opts.OutputDir)
				return nil
			}
			printSuccess(c.Out, "Removed %s", plural(len(removed), "artifact"))
			if !quiet {
				for _, r := range removed {
					printFile(c.Out, r)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not list removed paths")

	return cmd
}
