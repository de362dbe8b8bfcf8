package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

var errSessionRunning = errors.New("stop the session before changing it")

func (m MainModel) buildRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	// Global
	r.Register(KeyBinding{Keys: []string{"q"}, Handler: handleQuit, Description: "quit"})
	r.Register(KeyBinding{Keys: []string{"tab"}, Handler: handleNextTab, Description: "next tab"})
	r.Register(KeyBinding{Keys: []string{"shift+tab"}, Handler: handlePrevTab})
	r.Register(KeyBinding{Keys: []string{"1", "2", "3"}, Handler: handleJumpTab})

	// Home
	home := []Tab{TabHome}
	r.Register(KeyBinding{Keys: []string{" ", "enter"}, Handler: handleToggleSession, Description: "start/pause", Tabs: home, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleReset, Description: "reset", Tabs: home, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"m"}, Handler: handleCycleMinutes, Description: "length", Tabs: home, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"t", "right", "l"}, Handler: handleNextTechnique, Description: "technique", Tabs: home, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"left", "h"}, Handler: handlePrevTechnique, Tabs: home, Priority: 10})

	// Techniques
	techniques := []Tab{TabTechniques}
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleCursorDown, Description: "move", Tabs: techniques, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleCursorUp, Tabs: techniques, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"enter", " "}, Handler: handleSelectTechnique, Description: "use", Tabs: techniques, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"p"}, Handler: handleExportGuide, Description: "export PDF", Tabs: techniques, Priority: 10})

	// Settings
	settings := []Tab{TabSettings}
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleSettingsDown, Description: "move", Tabs: settings, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleSettingsUp, Tabs: settings, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"enter", " "}, Handler: handleToggleSetting, Description: "toggle", Tabs: settings, Priority: 10})
	return r
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.timer.Pause()
	return m, tea.Quit, true
}

func handleNextTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + 1) % Tab(len(tabNames))
	return m, nil, true
}

func handlePrevTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
	return m, nil, true
}

func handleJumpTab(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	m.tab = Tab(key[0] - '1')
	return m, nil, true
}

func handleToggleSession(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.timer.Running() {
		m.timer.Pause()
		return m, nil, true
	}
	if err := m.timer.Start(m.prefs.SessionMinutes); err != nil {
		if errors.Is(err, engine.ErrNothingToResume) {
			m.timer.Reset()
			err = m.timer.Start(m.prefs.SessionMinutes)
		}
		if err != nil {
			m.err = err
			return m, nil, true
		}
	}
	return m, frameCmd(m.timer.loopID, m.timer.interval), true
}

func handleReset(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.timer.Reset()
	return m, nil, true
}

func handleCycleMinutes(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.timer.State == TimerRunning || m.timer.State == TimerPaused {
		m.err = errSessionRunning
		return m, nil, true
	}
	next := config.SessionChoices[0]
	for i, c := range config.SessionChoices {
		if c == m.prefs.SessionMinutes {
			next = config.SessionChoices[(i+1)%len(config.SessionChoices)]
			break
		}
	}
	m.prefs.SessionMinutes = next
	m.timer.Reset()
	return m, savePrefsCmd(m.ctx, m.store, m.prefs), true
}

func handleNextTechnique(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.stepTechnique(1)
}

func handlePrevTechnique(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.stepTechnique(-1)
}

func (m MainModel) stepTechnique(delta int) (MainModel, tea.Cmd, bool) {
	n := m.catalog.Len()
	idx := m.catalog.IndexOf(m.prefs.TechniqueID)
	idx = ((idx+delta)%n + n) % n
	return m.selectTechnique(idx)
}

// selectTechnique switches to the catalog entry at idx. The switch is refused
// while a session is running or paused.
func (m MainModel) selectTechnique(idx int) (MainModel, tea.Cmd, bool) {
	if m.timer.State == TimerRunning || m.timer.State == TimerPaused {
		m.err = errSessionRunning
		return m, nil, true
	}
	tech := m.catalog.Techniques()[idx]
	if err := m.timer.Engine.Configure(tech); err != nil {
		m.err = err
		return m, nil, true
	}
	m.timer.Reset()
	m.prefs.TechniqueID = tech.ID
	m.cursor = idx
	m.refreshCatalogView()
	return m, savePrefsCmd(m.ctx, m.store, m.prefs), true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.cursor < m.catalog.Len()-1 {
		m.cursor++
		m.refreshCatalogView()
	}
	return m, nil, true
}

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
		m.refreshCatalogView()
	}
	return m, nil, true
}

func handleSelectTechnique(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd, handled := m.selectTechnique(m.cursor)
	if next.err == nil {
		next.message = fmt.Sprintf("%s selected", next.technique().Name)
	}
	return next, cmd, handled
}

func handleExportGuide(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.message = "Exporting guide..."
	return m, exportCmd(m.exportDir, m.catalog, m.clock.Now()), true
}

// settingRows lists the toggles on the settings tab in display order.
var settingRows = []struct {
	label       string
	description string
}{
	{"Breathing Reminders", "Keep a daily practice reminder preference"},
	{"Haptic Feedback", "Ring the terminal bell at each new breath"},
	{"Dark Mode", "Switch to dark theme for evening practice"},
}

func handleSettingsDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.settingsCursor < len(settingRows)-1 {
		m.settingsCursor++
	}
	return m, nil, true
}

func handleSettingsUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.settingsCursor > 0 {
		m.settingsCursor--
	}
	return m, nil, true
}

func handleToggleSetting(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	switch m.settingsCursor {
	case 0:
		m.prefs.Reminders = !m.prefs.Reminders
	case 1:
		m.prefs.Haptics = !m.prefs.Haptics
		m.syncHaptics()
	case 2:
		m.prefs.DarkMode = !m.prefs.DarkMode
		m.theme = ThemeFor(m.prefs.DarkMode)
		m.refreshCatalogView()
	}
	return m, savePrefsCmd(m.ctx, m.store, m.prefs), true
}

// settingValue reports the toggle state of row i.
func (m MainModel) settingValue(i int) bool {
	switch i {
	case 0:
		return m.prefs.Reminders
	case 1:
		return m.prefs.Haptics
	case 2:
		return m.prefs.DarkMode
	}
	return false
}
