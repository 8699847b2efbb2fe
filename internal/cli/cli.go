// Package cli implements the hireflow command-line interface.
//
// # Commands
//
//   - render: write a workflow diagram as SVG, PNG, PDF, JSON, DOT or text
//   - view: browse the workflows interactively and export them as PDF
//   - variants: list the built-in workflows
//   - data: dump a workflow's step tree as JSON or YAML
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Defaults come from $XDG_CONFIG_HOME/hireflow/config.toml when it exists
// (see package config). Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs the duration of every traced export step. Loggers are passed
// through context.Context.
package cli

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/matzehuels/hireflow/pkg/buildinfo"
	"github.com/matzehuels/hireflow/pkg/cache"
	"github.com/matzehuels/hireflow/pkg/config"
	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for cache scopes and display.
const appName = "hireflow"

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
	Config config.Config

	logOut     io.Writer
	configPath string
	verbose    bool
	tracer     *sdktrace.TracerProvider
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		logOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Hireflow renders hiring workflows as diagrams",
		Long:              `Hireflow renders the employer, candidate and admin hiring workflows as card diagrams and exports them as SVG, PNG or PDF.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.shutdown(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hireflow/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.variantsCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.tracer = newTracerProvider(c.Logger)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) shutdown(cmd *cobra.Command) error {
	if c.tracer == nil {
		return nil
	}
	return c.tracer.Shutdown(cmd.Context())
}

// loadConfig reads the config file at path, or at the default location
// when path is empty. An explicitly named file must exist.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Default(), nil
		}
		return config.Load(p)
	}
	if _, err := os.Stat(path); err != nil {
		return config.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file")
	}
	return config.Load(path)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by an in-process cache.
func (c *CLI) newRunner() *pipeline.Runner {
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
	return pipeline.NewRunner(cache.NewMemoryCache(), keyer, c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// setCLIDefaults fills options the user left unset from the config file,
// then applies pipeline defaults.
func setCLIDefaults(opts *pipeline.Options, cfg config.Config) {
	if opts.Variant == "" && opts.Input == nil {
		opts.Variant = cfg.View.Variant
	}
	if opts.VizType == "" {
		opts.VizType = cfg.Render.VizType
	}
	if len(opts.Formats) == 0 {
		opts.Formats = slices.Clone(cfg.Render.Formats)
	}
	if opts.Style == "" {
		opts.Style = cfg.Render.Style
	}
	if opts.Scale <= 0 {
		opts.Scale = cfg.Render.Scale
	}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so the configured formats apply.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
