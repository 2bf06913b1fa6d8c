package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// stdout receives the human-readable status lines. Logs go to stderr.
var stdout io.Writer = os.Stdout

var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorValue  = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

// Styles shared by the commands, the themes table and the preview TUI.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleNumber    = StyleHighlight
	StyleLink      = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue     = lipgloss.NewStyle().Foreground(colorValue)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconError   = lipgloss.NewStyle().Foreground(colorFail)
	styleIconSpinner = StyleHighlight
)

// status line markers
var (
	markSuccess = StyleSuccess.Render("✓")
	markError   = styleIconError.Render("✗")
	markWarning = StyleWarning.Render("!")
	markInfo    = StyleDim.Render("›")
	markFile    = StyleDim.Render("→")
)

func printLine(mark, format string, args []any) {
	fmt.Fprintln(stdout, mark+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { printLine(markSuccess, format, args) }
func printError(format string, args ...any)   { printLine(markError, format, args) }
func printInfo(format string, args ...any)    { printLine(markInfo, format, args) }

func printWarning(format string, args ...any) {
	printLine(markWarning, "%s", []any{StyleWarning.Render(fmt.Sprintf(format, args...))})
}

// printDetail prints a muted line indented under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written artifact path.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+markFile+" "+StyleValue.Render(path))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, command string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+StyleHighlight.Render(command))
}

// printStats prints the build summary: series count, document size and
// whether the sinks were served from cache.
func printStats(stats pipeline.Stats, cached bool) {
	var parts []string
	if stats.SeriesCount > 0 {
		parts = append(parts, fmt.Sprintf("%d series", stats.SeriesCount))
	}
	parts = append(parts, formatBytes(stats.DocumentSize))
	if cached {
		parts = append(parts, StyleSuccess.Render("cached"))
	} else {
		parts = append(parts, "fresh")
	}
	fmt.Fprintln(stdout, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	}
}
