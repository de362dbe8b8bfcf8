package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) renderCard(i int, e catalog.Entry) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Bold(true)
	lines := []string{
		accent.Render(e.Technique.Name) + "  " + m.theme.Dim.Render(e.Pattern),
		e.Description,
		m.theme.Subtitle.Render("Benefits:"),
	}
	for _, b := range e.Benefits {
		lines = append(lines, accent.Render("•")+" "+b)
	}
	if e.Technique.ID == m.prefs.TechniqueID {
		lines = append(lines, m.theme.Focused.Render("In use"))
	}
	style := m.theme.Card
	if i == m.cursor {
		style = m.theme.CardSelected
	}
	if w := m.viewport.Width - 2; w > 20 {
		style = style.Width(w)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// refreshCatalogView rebuilds the techniques tab and scrolls the selected
// card into view.
func (m *MainModel) refreshCatalogView() {
	var blocks []string
	blocks = append(blocks,
		m.theme.Title.Render("Breathing Techniques"),
		m.theme.Subtitle.Render("Choose the technique that works best for you"),
		"",
	)
	offset := 0
	for i, e := range m.catalog.Entries() {
		if i == m.cursor {
			offset = lipgloss.Height(strings.Join(blocks, "\n"))
		}
		blocks = append(blocks, m.renderCard(i, e))
	}

	tips := []string{m.theme.Title.Render("Tips for Better Practice")}
	for _, tip := range catalog.Tips {
		tips = append(tips, fmt.Sprintf("• %s", tip))
	}
	blocks = append(blocks, "", strings.Join(tips, "\n"))

	m.viewport.SetContent(strings.Join(blocks, "\n"))
	m.viewport.SetYOffset(offset)
}
