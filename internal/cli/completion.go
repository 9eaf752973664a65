package cli

import (
	"github.com/spf13/cobra"
)

// definitionExts are the metric definition formats, offered when completing
// --metrics.
var definitionExts = []string{"yaml", "yml", "toml"}

// dirFlags complete to directories only.
var dirFlags = []string{"data-dir", "output"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for datanate.

Besides commands and flags, the scripts complete --metrics to definition
files (.yaml, .yml, .toml), --config to YAML files, and --data-dir and
--output to directories.

  $ source <(datanate completion bash)
  $ datanate completion zsh > "${fpath[1]}/_datanate"
  $ datanate completion fish > ~/.config/fish/completions/datanate.fish
  PS> datanate completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// registerCompletions marks path-valued flags on cmd and its subcommands so
// shells complete them to matching files or directories.
func registerCompletions(cmd *cobra.Command) {
	if cmd.Flags().Lookup("metrics") != nil {
		_ = cmd.MarkFlagFilename("metrics", definitionExts...)
	}
	for _, name := range dirFlags {
		if cmd.Flags().Lookup(name) != nil {
			_ = cmd.MarkFlagDirname(name)
		}
	}
	for _, sub := range cmd.Commands() {
		registerCompletions(sub)
	}
}
