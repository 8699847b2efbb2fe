package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/config"
	"github.com/matzehuels/hireflow/pkg/errors"
)

// Execute runs the hireflow CLI and returns an error if any command fails.
//
// Logging goes to stderr at the level from the config file (info by
// default), or debug with --verbose.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.run(ctx, c.RootCommand())
}

// run executes root and points at the config file when that is what
// failed to load.
func (c *CLI) run(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if errors.Has(err, errors.ErrCodeInvalidConfig) {
		path := c.configPath
		if path == "" {
			path, _ = config.Path()
		}
		c.Logger.Warn("fix or remove the config file", "path", path)
	}
	return err
}
