package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/datanate/pkg/buildinfo"
	"github.com/matzehuels/datanate/pkg/config"
	"github.com/matzehuels/datanate/pkg/observability"
	"github.com/matzehuels/datanate/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "datanate"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output (summaries, tables, DOT).
	Out io.Writer

	configPath string
	verbose    bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Datanate builds a static metrics dashboard",
		Long: `Datanate turns metric definitions and CSV series into a static dashboard.

Metrics are ordered into tiers by their influence relationships, grouped by
category, and rendered into a single page whose stylesheets, scripts and
vendored modules are published under content-hashed names.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.SetOutput(cmd.OutOrStdout())
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetBuildHooks(hooks)
				observability.SetAssetHooks(hooks)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $"+config.EnvConfigFile+")")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.tiersCommand())
	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.completionCommand())

	_ = root.MarkPersistentFlagFilename("config", "yaml", "yml")
	registerCompletions(root)

	return root
}

// SetOutput redirects command output. Log output is unaffected.
func (c *CLI) SetOutput(w io.Writer) {
	c.Out = w
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// inputFlags are the flags shared by commands that read metrics.
type inputFlags struct {
	metrics string
	dataDir string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.metrics, "metrics", "m", "", "metric definition file (.yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&f.dataDir, "data-dir", "d", "", "directory holding the CSV series")
}

func (f *inputFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("metrics") {
		opts.MetricsFile = f.metrics
	}
	if cmd.Flags().Changed("data-dir") {
		opts.DataDir = f.dataDir
	}
}

// loadOptions layers the config file and environment over the defaults
// and returns pipeline options with the CLI logger attached.
func (c *CLI) loadOptions() (pipeline.Options, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.OptionsFromConfig(cfg)
	opts.Logger = c.Logger
	return opts, nil
}
