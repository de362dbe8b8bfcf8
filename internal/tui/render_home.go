package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) circleRows() int {
	rows := config.MaxCircleRows
	if m.height > 0 {
		if avail := (m.height - config.HomeChromeRows) / 2; avail < rows {
			rows = avail
		}
	}
	if rows < config.MinCircleRows {
		rows = config.MinCircleRows
	}
	return rows
}

func (m MainModel) renderHome() string {
	snap := m.timer.Snapshot()
	tech := m.technique()

	header := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render("Breathe"),
		m.theme.Subtitle.Render(tech.Name),
	)

	phaseText := snap.Phase.Label()
	if countdown := FormatPhaseCountdown(snap.PhaseElapsed, snap.PhaseDuration); snap.Running && countdown != "" {
		phaseText = fmt.Sprintf("%s  %s", phaseText, countdown)
	}
	switch m.timer.State {
	case TimerPaused:
		phaseText = "Paused"
	case TimerFinished:
		phaseText = "Complete"
	}
	timer := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Timer.Render(FormatClock(m.timer.DisplaySeconds(m.prefs.SessionMinutes))),
		lipgloss.NewStyle().Foreground(m.theme.PhaseColor(snap.Phase)).Render(phaseText),
	)

	circle := renderCircle(m.timer.CircleScale(), m.timer.CircleOpacity(), m.circleRows(), m.theme.PhaseColor(snap.Phase))

	progress := ""
	if m.timer.State != TimerIdle {
		progress = m.progress.ViewAs(snap.Progress())
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		timer,
		"",
		circle,
		"",
		progress,
		m.renderSessionChoices(),
		m.renderTechniqueChoices(),
	)
}

func (m MainModel) renderSessionChoices() string {
	chips := []string{m.theme.Dim.Render("Session")}
	for _, minutes := range config.SessionChoices {
		style := m.theme.Chip
		if minutes == m.prefs.SessionMinutes {
			style = m.theme.ChipActive
		}
		chips = append(chips, style.Render(fmt.Sprintf("%dm", minutes)))
	}
	return strings.Join(chips, " ")
}

func (m MainModel) renderTechniqueChoices() string {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return m.theme.Dim.Render("[t] " + m.technique().Name)
	}
	var chips []string
	for _, tech := range m.catalog.Techniques() {
		style := m.theme.Chip
		if tech.ID == m.prefs.TechniqueID {
			style = m.theme.ChipActive
		}
		chips = append(chips, style.Render(tech.Name))
	}
	return truncateLine(strings.Join(chips, " "), m.width-4)
}
