package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart"
)

// chartFileExts are the extensions offered when completing a chart file
// argument.
var chartFileExts = []string{"toml", "yaml", "yml", "json"}

// completeChartFile completes the single chart file argument of build,
// serve and export.
func completeChartFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return chartFileExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeTheme completes the --theme flag with the known theme names.
func completeTheme(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	themes := chart.Themes()
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for chartkit.

Chart file arguments complete to .toml, .yaml, .yml and .json files, and
--theme completes to the theme names listed by 'chartkit themes'.

  bash        source <(chartkit completion bash)
  zsh         chartkit completion zsh > "${fpath[1]}/_chartkit"
  fish        chartkit completion fish > ~/.config/fish/completions/chartkit.fish
  powershell  chartkit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
