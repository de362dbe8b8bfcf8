package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/database"
	"github.com/akyairhashvil/breathe/internal/engine"
	"github.com/akyairhashvil/breathe/internal/haptics"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/tui"
	"github.com/akyairhashvil/breathe/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		plain   bool
		seconds int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a session that prints each phase instead of drawing the circle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			db, err := database.Open(cmd.Context(), dbPath(cfg))
			if err != nil {
				return err
			}
			defer func() { util.LogError("close database", db.Close()) }()
			prefs, err := a.preferences(cmd, cfg, db)
			if err != nil {
				util.LogError("load preferences", err)
			}

			tech, ok := a.catalog.Lookup(prefs.TechniqueID)
			if !ok {
				tech, _ = a.catalog.Lookup(cfg.Technique)
			}
			total := prefs.SessionMinutes * 60
			if seconds > 0 {
				total = seconds
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSession(ctx, sessionOptions{
				technique: tech,
				total:     total,
				haptics:   prefs.Haptics,
				plain:     plain,
				out:       cmd.OutOrStdout(),
				bell:      cmd.ErrOrStderr(),
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "session length in seconds (overrides --minutes)")
	return cmd
}

type sessionOptions struct {
	technique models.Technique
	total     int
	haptics   bool
	plain     bool
	out       io.Writer
	bell      io.Writer
}

// runSession drives an engine in real time until the session ends or ctx is
// cancelled. Cancellation is a normal way to stop.
func runSession(ctx context.Context, opts sessionOptions) error {
	pr := &transitionPrinter{w: opts.out, plain: opts.plain, theme: tui.ThemeFor(true)}
	bell := haptics.NewBell(opts.bell, opts.haptics)
	e, err := engine.New(opts.technique,
		engine.WithTransitionHook(pr.print),
		engine.WithCue(func(p models.Phase) {
			util.LogError("haptic cue", bell.Fire(p))
		}),
	)
	if err != nil {
		return err
	}
	pr.engine = e

	if err := e.Activate(opts.total); err != nil {
		return err
	}
	err = e.Run(ctx, config.PlainInterval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type transitionPrinter struct {
	w      io.Writer
	plain  bool
	theme  tui.Theme
	engine *engine.Engine
	start  time.Time
	breath int
}

func (p *transitionPrinter) print(tr engine.Transition) {
	if tr.Kind == engine.Started {
		p.start = tr.At
		p.breath = 1
	}
	stamp := tui.FormatClock(int(tr.At.Sub(p.start) / time.Second))

	var line string
	switch tr.Kind {
	case engine.Started:
		s := p.engine.Session()
		line = fmt.Sprintf("%s (%s) for %s", s.Technique.Name, s.Technique.Pattern(), tui.FormatClock(s.RemainingSeconds))
		line += "\n" + stamp + "  " + p.phase(tr.To)
	case engine.PhaseChanged:
		if tr.Cue {
			p.breath++
		}
		line = p.phase(tr.To)
	case engine.Finished:
		line = "Session complete. Well done."
	case engine.Stopped:
		line = fmt.Sprintf("Stopped with %s left.", tui.FormatClock(p.engine.Session().RemainingSeconds))
	}
	if _, err := fmt.Fprintf(p.w, "%s  %s\n", stamp, line); err != nil {
		util.LogError("print transition", err)
	}
}

func (p *transitionPrinter) phase(ph models.Phase) string {
	label := ph.Label()
	if ph == models.PhaseInhale {
		label = fmt.Sprintf("%s (breath %d)", label, p.breath)
	}
	if p.plain {
		return label
	}
	return lipgloss.NewStyle().Foreground(p.theme.PhaseColor(ph)).Render(label)
}
