package dash

import "github.com/charmbracelet/lipgloss"

// Palette is based on Vitesse Dark Soft, trimmed to what the dashboard uses.
type theme struct {
	Primary   lipgloss.Color // #4d9375
	Yellow    lipgloss.Color // #e6cc77
	Red       lipgloss.Color // #cb7676
	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Border    lipgloss.Color // #252525
}

var vitesse = theme{
	Primary:   lipgloss.Color("#4d9375"),
	Yellow:    lipgloss.Color("#e6cc77"),
	Red:       lipgloss.Color("#cb7676"),
	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Border:    lipgloss.Color("#252525"),
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(vitesse.Primary).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(vitesse.Secondary).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(vitesse.Text)
	clockStyle = lipgloss.NewStyle().Foreground(vitesse.Yellow).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(vitesse.Red)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(vitesse.Border).
			Padding(0, 1).
			MarginRight(1)
	footStyle = lipgloss.NewStyle().Foreground(vitesse.Secondary).MarginTop(1)
)
