package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for exp.

To load completions:

Bash:
  # Load on shell startup (add to ~/.bashrc)
  $ source <(exp completion bash)

  # Or install permanently (requires sudo)
  $ exp completion bash | sudo tee /etc/bash_completion.d/exp >/dev/null

Zsh:
  # Load on shell startup (add to ~/.zshrc)
  $ source <(exp completion zsh)

  # Note: If shell completion is not already enabled:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

Fish:
  $ exp completion fish > ~/.config/fish/completions/exp.fish

PowerShell:
  PS> exp completion powershell | Out-String | Invoke-Expression
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
