package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/render/sink"
)

// themesCommand lists the chart themes.
func (c *CLI) themesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List chart themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain {
				for _, t := range chart.Themes() {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			fmt.Fprintln(out, themesTable())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one theme name per line")
	return cmd
}

// themesTable renders the themes with where their script comes from.
func themesTable() string {
	rows := make([][]string, 0, len(chart.Themes()))
	for _, t := range chart.Themes() {
		source := "built in"
		if !t.Builtin() {
			source = sink.DefaultAssetsHost + "/theme/" + t.Name() + ".js"
		}
		rows = append(rows, []string{t.String(), source})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("Theme", "Script").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			default:
				return StyleDim
			}
		}).
		Render()
}
