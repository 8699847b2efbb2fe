package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/errors"
	"github.com/matzehuels/hireflow/pkg/io"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

type dataOpts struct {
	variant string
	format  string
	output  string
}

// dataCommand creates the data command for dumping a workflow's step tree.
func (c *CLI) dataCommand() *cobra.Command {
	var opts dataOpts

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Dump a workflow's step tree as JSON or YAML",
		Long: `Dump a workflow's step tree as JSON or YAML.

The output can be edited and rendered again with "hireflow render -i".`,
		Example: `  hireflow data -V admin -f yaml
  hireflow data -V candidate -o candidate.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runData(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.variant, "variant", "V", "", "workflow variant: "+strings.Join(catalog.Names(), ", "))
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "data format: json (default), yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout (format from extension)")
	registerCompletions(cmd)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFixed([]string{io.FormatJSON, io.FormatYAML}))

	return cmd
}

func (c *CLI) runData(cmd *cobra.Command, opts dataOpts) error {
	logger := loggerFromContext(cmd.Context())

	variant := opts.variant
	if variant == "" {
		variant = c.Config.View.Variant
	}
	entry, err := catalog.Resolve(variant)
	if err != nil {
		return err
	}
	doc := io.FromEntry(entry)

	if opts.output != "" {
		if opts.format != "" {
			if inferred, err := io.FormatFromPath(opts.output); err == nil && inferred != opts.format {
				return errors.New(errors.ErrCodeInvalidFormat, "--format %s does not match %s", opts.format, opts.output)
			}
		}
		if err := io.Export(doc, opts.output); err != nil {
			return err
		}
		logger.Debug("exported workflow data", "variant", entry.Variant, "path", opts.output)
		printSuccess("Wrote %s", opts.output)
		return nil
	}

	format := strings.ToLower(opts.format)
	if format == "" {
		format = io.FormatJSON
	}
	return io.Write(doc, format, cmd.OutOrStdout())
}
