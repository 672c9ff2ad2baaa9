package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symWarning() string { return cliWarn.Render("!") }

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard renders a bordered card with a bold title and body lines.
func renderCard(title string, lines ...string) string {
	var body strings.Builder
	body.WriteString(cliPrimary.Bold(true).Render(title))
	if len(lines) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(lines, "\n"))
	}
	return cardStyle().Render(body.String())
}

// renderSuccessCard renders a card whose title carries a check mark.
func renderSuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(symSuccess() + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

// renderWarningCard renders a card for a run that finished with failures.
func renderWarningCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(symWarning() + " " + cliWarn.Bold(true).Render(title))
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().BorderForeground(cliWarn.GetForeground()).Render(body.String())
}

type kvPair struct {
	Key   string
	Value string
}

// renderKeyValueLines aligns keys into a column.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		pad := strings.Repeat(" ", width-lipgloss.Width(p.Key))
		lines[i] = cliMuted.Render(p.Key+pad) + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

const bannerArt = ` __  __           _       _            _
|  \/  | ___   __| |_   _| | __ _ _ __(_)_______ _ __
| |\/| |/ _ \ / _` + "`" + ` | | | | |/ _` + "`" + ` | '__| |_  / _ \ '__|
| |  | | (_) | (_| | |_| | | (_| | |  | |/ /  __/ |
|_|  |_|\___/ \__,_|\__,_|_|\__,_|_|  |_/___\___|_|`

// PrintBanner writes the modularizer banner with the version.
func PrintBanner(w io.Writer, version string) {
	_, _ = fmt.Fprintln(w, cliPrimary.Bold(true).Render(bannerArt))
	_, _ = fmt.Fprintln(w, cliMuted.Render("  Angular module scaffolding "+version))
	_, _ = fmt.Fprintln(w)
}
