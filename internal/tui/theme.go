package tui

import (
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Timer        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Message      lipgloss.Style
	Error        lipgloss.Style
	Inhale       lipgloss.Color
	Hold         lipgloss.Color
	Exhale       lipgloss.Color
}

// PhaseColor is the circle color for p.
func (t Theme) PhaseColor(p models.Phase) lipgloss.Color {
	switch p {
	case models.PhaseHold:
		return t.Hold
	case models.PhaseExhale:
		return t.Exhale
	default:
		return t.Inhale
	}
}

var Themes = map[string]Theme{
	"light": {
		Name:         "Light",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("#B39DDB"),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Timer:        lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Bold(true),
		TabActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#4FC3F7")).Padding(0, 2).Bold(true),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 2),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#DDDDDD")).Padding(0, 1),
		CardSelected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4FC3F7")).Padding(0, 1),
		Chip:         lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 1),
		ChipActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#4FC3F7")).Padding(0, 1),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("#4FC3F7")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("#66BB6A")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")).Bold(true),
		Inhale:       lipgloss.Color("#4FC3F7"),
		Hold:         lipgloss.Color("#9C27B0"),
		Exhale:       lipgloss.Color("#66BB6A"),
	},
	"dark": {
		Name:         "Dark",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Timer:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		TabActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("117")).Padding(0, 2).Bold(true),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		CardSelected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("117")).Padding(0, 1),
		Chip:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ChipActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("117")).Padding(0, 1),
		Focused:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Inhale:       lipgloss.Color("117"), // Cyan
		Hold:         lipgloss.Color("141"), // Purple
		Exhale:       lipgloss.Color("120"), // Green
	},
}

// ThemeFor picks the palette for the dark mode preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return Themes["dark"]
	}
	return Themes["light"]
}
