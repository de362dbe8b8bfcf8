package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// progressStats are display values only; session history is not recorded.
var progressStats = []struct {
	value int
	label string
}{
	{42, "Sessions"},
	{156, "Minutes"},
	{7, "Day Streak"},
	{12, "Best Streak"},
}

var aboutRows = []struct {
	label       string
	description string
}{
	{"About Breathe", "Learn more about this app and breathing techniques"},
	{"Help & Support", "Get help with using the app"},
}

const appDescription = "A simple and beautiful app to help you practice mindful breathing"

func (m MainModel) renderStats() string {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		parts := make([]string, 0, len(progressStats))
		for _, s := range progressStats {
			parts = append(parts, fmt.Sprintf("%d %s", s.value, s.label))
		}
		return strings.Join(parts, m.theme.Dim.Render(" · "))
	}
	tiles := make([]string, 0, len(progressStats))
	for _, s := range progressStats {
		tile := lipgloss.JoinVertical(lipgloss.Center,
			m.theme.Timer.Render(strconv.Itoa(s.value)),
			m.theme.Dim.Render(s.label),
		)
		tiles = append(tiles, m.theme.Card.Width(15).Align(lipgloss.Center).Render(tile))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m MainModel) renderSettings() string {
	lines := []string{
		m.theme.Title.Render("Settings"),
		m.theme.Subtitle.Render("Customize your breathing experience"),
		"",
		m.theme.Subtitle.Render("YOUR PROGRESS"),
		m.renderStats(),
		"",
		m.theme.Subtitle.Render("PREFERENCES"),
	}
	for i, row := range settingRows {
		mark := "[ ]"
		if m.settingValue(i) {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s %s", mark, row.label)
		if i == m.settingsCursor {
			label = m.theme.Focused.Render("> " + label)
		} else {
			label = "  " + label
		}
		lines = append(lines, label, "      "+m.theme.Dim.Render(row.description))
	}
	lines = append(lines, "", m.theme.Subtitle.Render("ABOUT"))
	for _, row := range aboutRows {
		lines = append(lines, "  "+row.label, "      "+m.theme.Dim.Render(row.description))
	}
	lines = append(lines,
		"",
		"  "+m.theme.Title.Render("Breathe")+"  "+m.theme.Dim.Render("Version "+versionLabel()),
		"  "+m.theme.Dim.Render(appDescription),
	)
	return strings.Join(lines, "\n")
}
