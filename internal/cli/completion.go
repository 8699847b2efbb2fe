package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/pipeline"
	"github.com/matzehuels/hireflow/pkg/render/flow/styles"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for hireflow.

To load completions:

Bash:
  $ source <(hireflow completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ hireflow completion bash > /etc/bash_completion.d/hireflow
  # macOS:
  $ hireflow completion bash > $(brew --prefix)/etc/bash_completion.d/hireflow

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ hireflow completion zsh > "${fpath[1]}/_hireflow"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ hireflow completion fish | source

  # To load completions for each session, execute once:
  $ hireflow completion fish > ~/.config/fish/completions/hireflow.fish

PowerShell:
  PS> hireflow completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> hireflow completion powershell > hireflow.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// registerCompletions adds shell completion for the flags shared by the
// workflow commands.
func registerCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("variant", completeFixed(catalog.Names()))
	if cmd.Flags().Lookup("style") != nil {
		_ = cmd.RegisterFlagCompletionFunc("style", completeFixed(styles.Names()))
	}
	if cmd.Flags().Lookup("type") != nil {
		_ = cmd.RegisterFlagCompletionFunc("type", completeFixed(pipeline.VizTypes))
	}
}

func completeFixed(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
