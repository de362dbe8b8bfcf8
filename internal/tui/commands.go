package tui

import (
	"context"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/akyairhashvil/breathe/internal/haptics"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// FrameMsg drives one animation frame of loop ID.
type FrameMsg struct {
	ID   int
	Time time.Time
}

type prefsSavedMsg struct{ err error }

type exportDoneMsg struct {
	path string
	err  error
}

type cueFiredMsg struct{ err error }

func frameCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return FrameMsg{ID: id, Time: t} })
}

func savePrefsCmd(ctx context.Context, store Store, p models.Preferences) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return prefsSavedMsg{err: store.SavePreferences(ctx, p)}
	}
}

func cueCmd(cue haptics.Cue, p models.Phase) tea.Cmd {
	if cue == nil {
		return nil
	}
	return func() tea.Msg {
		return cueFiredMsg{err: cue.Fire(p)}
	}
}

func exportCmd(dir string, c *catalog.Catalog, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, report.GuideFileName(now))
		abs, err := report.ExportGuide(path, c, catalog.Tips)
		return exportDoneMsg{path: abs, err: err}
	}
}
