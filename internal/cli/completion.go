package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/layout"
)

// manifestExtensions are the file extensions manifest.Read understands.
// A layout.json document shares the json extension.
var manifestExtensions = []string{"json", "toml", "yaml", "yml"}

// completeManifest offers manifest files for the single positional argument.
func completeManifest(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return manifestExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completeAlgorithm offers algorithm names with their one-line summary.
func completeAlgorithm(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, a := range layout.Algorithms() {
		if strings.HasPrefix(a.String(), toComplete) {
			out = append(out, a.String()+"\t"+a.Summary())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mosaic.

Completions cover subcommands and flags, algorithm names for --type, and
manifest files (.json, .toml, .yaml, .yml) for layout, preview and explore.

  $ source <(mosaic completion bash)
  $ mosaic completion zsh > "${fpath[1]}/_mosaic"
  $ mosaic completion fish > ~/.config/fish/completions/mosaic.fish
  PS> mosaic completion powershell | Out-String | Invoke-Expression
`,
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
