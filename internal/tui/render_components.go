package tui

import (
	"strings"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLine(text string, max int) string {
	if max <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m MainModel) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		style := m.theme.TabInactive
		if Tab(i) == m.tab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.theme.Error.Render("Error: "+m.err.Error()))
	} else if m.message != "" {
		lines = append(lines, m.theme.Message.Render(m.message))
	}
	lines = append(lines, m.theme.Dim.Render(truncateLine(m.registry.HelpForTab(m.tab), m.width-4)))
	return strings.Join(lines, "\n")
}

func (m MainModel) View() string {
	var body string
	switch m.tab {
	case TabTechniques:
		body = m.viewport.View()
	case TabSettings:
		body = m.renderSettings()
	default:
		body = m.renderHome()
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		body,
		"",
		m.renderFooter(),
	))
}
