package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

type styles struct {
	title        lipgloss.Style
	field        lipgloss.Style
	fieldFocused lipgloss.Style
	fieldLabel   lipgloss.Style
	arrow        lipgloss.Style
	calendar     lipgloss.Style
	monthTitle   lipgloss.Style
	weekday      lipgloss.Style
	day          lipgloss.Style
	today        lipgloss.Style
	unavailable  lipgloss.Style
	inSpan       lipgloss.Style
	endpoint     lipgloss.Style
	cursor       lipgloss.Style
	hint         lipgloss.Style
	status       lipgloss.Style
	statusError  lipgloss.Style
	confirmed    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		field:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1),
		fieldFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1),
		fieldLabel:   lipgloss.NewStyle().Foreground(colorSubtext0),
		arrow:        lipgloss.NewStyle().Foreground(colorOverlay0),
		calendar:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1),
		monthTitle:   lipgloss.NewStyle().Foreground(colorText).Bold(true),
		weekday:      lipgloss.NewStyle().Foreground(colorOverlay0),
		day:          lipgloss.NewStyle().Foreground(colorText),
		today:        lipgloss.NewStyle().Foreground(colorPeach).Bold(true),
		unavailable:  lipgloss.NewStyle().Foreground(colorSurface1).Strikethrough(true),
		inSpan:       lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0),
		endpoint:     lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true),
		cursor:       lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true),
		hint:         lipgloss.NewStyle().Foreground(colorOverlay0),
		status:       lipgloss.NewStyle().Foreground(colorInfo),
		statusError:  lipgloss.NewStyle().Foreground(colorError),
		confirmed:    lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
	}
}
