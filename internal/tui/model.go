package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/engine"
	"github.com/akyairhashvil/breathe/internal/haptics"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options carries the dependencies of the main model.
type Options struct {
	Catalog       *catalog.Catalog
	Preferences   models.Preferences
	Cue           haptics.Cue
	Clock         engine.Clock
	FrameInterval time.Duration
	ExportDir     string
	Logger        *log.Logger
}

// MainModel is the root bubbletea model holding the three tabs.
type MainModel struct {
	ctx      context.Context
	store    Store
	catalog  *catalog.Catalog
	cue      haptics.Cue
	registry *HandlerRegistry
	logger   *log.Logger
	clock    engine.Clock

	theme Theme
	tab   Tab
	prefs models.Preferences
	timer BreathTimer

	progress       progress.Model
	viewport       viewport.Model
	cursor         int // technique card on the catalog tab
	settingsCursor int
	exportDir      string

	message string
	err     error
	width   int
	height  int
}

func NewMainModel(ctx context.Context, store Store, opts Options) (MainModel, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Catalog.Len() == 0 {
		return MainModel{}, fmt.Errorf("catalog is empty")
	}
	if opts.Cue == nil {
		opts.Cue = haptics.Nop{}
	}
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	prefs := opts.Preferences
	if prefs.SessionMinutes <= 0 {
		prefs.SessionMinutes = config.DefaultSessionMinutes
	}
	technique, ok := opts.Catalog.Lookup(prefs.TechniqueID)
	if !ok {
		technique = opts.Catalog.Techniques()[0]
		prefs.TechniqueID = technique.ID
	}

	eng, err := engine.New(technique, engine.WithClock(opts.Clock), engine.WithLogger(opts.Logger))
	if err != nil {
		return MainModel{}, err
	}

	m := MainModel{
		ctx:       ctx,
		store:     store,
		catalog:   opts.Catalog,
		cue:       opts.Cue,
		logger:    opts.Logger,
		clock:     opts.Clock,
		theme:     ThemeFor(prefs.DarkMode),
		prefs:     prefs,
		timer:     NewBreathTimer(eng, opts.FrameInterval),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		viewport:  viewport.New(60, 20),
		cursor:    opts.Catalog.IndexOf(prefs.TechniqueID),
		exportDir: opts.ExportDir,
	}
	m.progress.Width = config.MaxProgressWidth
	m.registry = m.buildRegistry()
	m.syncHaptics()
	m.refreshCatalogView()
	return m, nil
}

func (m MainModel) Init() tea.Cmd {
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.timer.Pause()
			return m, tea.Quit
		}
		m.err = nil
		m.message = ""
		next, cmd, handled := m.registry.Handle(m, msg.String())
		if handled {
			return next, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case prefsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Printf("save preferences: %v", msg.err)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.message = "Guide saved to " + msg.path
		return m, nil

	case cueFiredMsg:
		if msg.err != nil {
			m.logger.Printf("haptic cue: %v", msg.err)
		}
		return m, nil
	}
	return m, nil
}

// handleFrame advances the engine and schedules the next frame while the
// session runs. Frames from an orphaned loop are dropped.
func (m MainModel) handleFrame(msg FrameMsg) (MainModel, tea.Cmd) {
	live, transitions := m.timer.Frame(msg.ID)
	if !live {
		return m, nil
	}
	var cmds []tea.Cmd
	for _, tr := range transitions {
		if tr.Cue {
			cmds = append(cmds, cueCmd(m.cue, tr.To))
		}
		if tr.Kind == engine.Finished {
			m.message = "Session complete. Well done."
		}
	}
	if m.timer.Running() {
		cmds = append(cmds, frameCmd(m.timer.loopID, m.timer.interval))
	}
	return m, tea.Batch(cmds...)
}

// layout sizes the width-dependent components.
func (m *MainModel) layout() {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	m.progress.Width = w - 10
	if m.progress.Width > config.MaxProgressWidth {
		m.progress.Width = config.MaxProgressWidth
	}
	m.viewport.Width = w
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	m.viewport.Height = h
	m.refreshCatalogView()
}

// syncHaptics mutes or unmutes the cue to match the haptics preference.
func (m MainModel) syncHaptics() {
	if t, ok := m.cue.(haptics.Toggler); ok {
		t.SetEnabled(m.prefs.Haptics)
	}
}

func (m MainModel) technique() models.Technique {
	return m.timer.Engine.Technique()
}

// Preferences returns the model's current preferences.
func (m MainModel) Preferences() models.Preferences { return m.prefs }
