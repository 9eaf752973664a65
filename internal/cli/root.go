// Package cli implements the datanate command-line interface.
//
// This package provides commands for building the metrics dashboard,
// inspecting the influence tiers of a metric definition file, and removing
// hashed artifacts from an output directory. The CLI is built using cobra
// and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Load metrics, assign tiers, publish assets and render the dashboard
//   - tiers: Print the tier of every metric, or the influence graph as DOT
//   - clean: Remove hashed assets and vendored module trees
//
// # Configuration
//
// Defaults come from pkg/config. A YAML file given with --config (or
// $DATANATE_CONFIG) and DATANATE_* environment variables override them;
// explicit flags override both.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. In verbose
// mode the observability hooks are routed to the logger as well.
//
// # Example
//
//	import "github.com/matzehuels/datanate/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/datanate/pkg/errors"
)

// Execute runs the datanate CLI with args and returns an error if the
// command fails. Logs are written to stderr at info level, or debug level
// with --verbose.
func Execute(ctx context.Context, args []string) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}

// FormatError renders err for the terminal: the user-facing message
// followed by the error code when there is one.
func FormatError(err error) string {
	msg := styleIconError.Render(iconError) + " " + errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg += " " + StyleDim.Render(fmt.Sprintf("[%s]", code))
	}
	return msg
}
