package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/io"
	"github.com/matzehuels/hireflow/pkg/pipeline"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	variant     string  // built-in workflow variant
	input       string  // custom workflow file (json or yaml)
	output      string  // output file (single format) or directory
	vizType     string  // flow or nodelink
	formats     string  // comma-separated output formats
	style       string  // card style: simple or mono
	scale       float64 // pixel density for png/pdf
	transparent bool    // omit the canvas background
	detailed    bool    // node-link labels include descriptions
	zoom        float64 // text output zoom
}

// renderCommand creates the render command for writing diagrams to files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a workflow diagram to files",
		Long: `Render a workflow diagram to one or more files.

Files are named <variant>-workflow.<format> and written to the configured
output directory, or to --output. With a single format --output may name
the file itself.`,
		Example: `  hireflow render -V candidate -f svg,pdf
  hireflow render -V admin -t nodelink -f png --scale 3
  hireflow render -i onboarding.yaml -f txt -o out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.variant, "variant", "V", "", "workflow variant: "+strings.Join(catalog.Names(), ", "))
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "render a custom workflow from a json or yaml file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or directory")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", "", "visualization type: flow (default), nodelink")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "card style: simple (default), mono")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixel density for png and pdf output (default 2)")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "omit the canvas background")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include step descriptions in node-link labels")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", 0, "zoom factor for txt output (default 1)")
	cmd.MarkFlagsMutuallyExclusive("variant", "input")
	registerCompletions(cmd)

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts := pipeline.Options{
		Variant:     opts.variant,
		VizType:     opts.vizType,
		Formats:     parseFormats(opts.formats),
		Style:       opts.style,
		Scale:       opts.scale,
		Transparent: opts.transparent,
		Detailed:    opts.detailed,
		Zoom:        opts.zoom,
		Logger:      logger,
	}
	if opts.input != "" {
		entry, err := loadWorkflow(opts.input)
		if err != nil {
			return err
		}
		popts.Input = &entry
	}
	setCLIDefaults(&popts, c.Config)

	runner := c.newRunner()
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	printInfo("%s %s", StyleTitle.Render(labelFor(result.Entry)), StyleDim.Render("("+popts.VizType+")"))
	printStats(result.Stats.StepCount, result.Stats.ConnectorCount, result.CacheInfo.LayoutHit)

	for _, format := range popts.Formats {
		path := outputPath(opts.output, c.Config.Render.OutputDir, result.Entry, format, len(popts.Formats) > 1)
		data := result.Artifacts[format]
		if err := writeFile(path, data); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(data))
		printFile(path, len(data))
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(popts.Formats)))
	if popts.Input == nil {
		printNextStep("Browse it interactively", "hireflow view -V "+string(result.Entry.Variant))
	}
	return nil
}

// loadWorkflow reads a custom workflow file. Documents without a variant
// name are named after the file.
func loadWorkflow(path string) (catalog.Entry, error) {
	doc, err := io.Import(path)
	if err != nil {
		return catalog.Entry{}, err
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return doc.Entry(stem), nil
}

// labelFor returns the display label of an entry, falling back to its name.
func labelFor(e catalog.Entry) string {
	if e.Label != "" {
		return e.Label
	}
	return string(e.Variant)
}

// outputPath decides where a format is written. Without --output files go
// to dir. A single format may be written to an explicit file whose
// extension matches; otherwise --output is a directory.
func outputPath(output, dir string, e catalog.Entry, format string, multi bool) string {
	name := e.Filename(format)
	if output == "" {
		if dir == "" {
			dir = "."
		}
		return filepath.Join(dir, name)
	}
	if !multi && strings.EqualFold(strings.TrimPrefix(filepath.Ext(output), "."), format) {
		return output
	}
	return filepath.Join(output, name)
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
