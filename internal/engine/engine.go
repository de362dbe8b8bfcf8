// Package engine runs the breathing cycle: it sequences Inhale, Hold and
// Exhale for a technique, counts a session down once per second, and reports
// the visual drive value for the breathing circle.
//
// The engine never starts goroutines or timers of its own. Callers advance it
// with Tick, either from a UI frame loop or through Run.
package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/breathe/internal/models"
)

var (
	ErrInvalidDuration = errors.New("session duration must be positive")
	ErrNothingToResume = errors.New("no time left to resume")
)

// TransitionKind classifies a Transition.
type TransitionKind int

const (
	// Started marks an activation entering Inhale.
	Started TransitionKind = iota
	// PhaseChanged is a boundary inside a running session.
	PhaseChanged
	// Finished means the countdown reached zero.
	Finished
	// Stopped means the caller deactivated or reset a running session.
	Stopped
)

func (k TransitionKind) String() string {
	switch k {
	case Started:
		return "started"
	case PhaseChanged:
		return "phase"
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Transition is one state change of the engine.
type Transition struct {
	Kind TransitionKind
	From models.Phase
	To   models.Phase
	At   time.Time
	// Cue is set on Exhale→Inhale boundaries, where the haptic cue fires.
	Cue bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithCue registers the hook fired exactly once per Exhale→Inhale boundary.
func WithCue(fn func(models.Phase)) Option {
	return func(e *Engine) { e.cue = fn }
}

// WithTransitionHook registers a hook fired for every transition.
func WithTransitionHook(fn func(Transition)) Option {
	return func(e *Engine) { e.onTransition = fn }
}

// WithLogger sets the destination for engine log lines.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine is the breathing-cycle state machine. All methods are safe for
// concurrent use; hooks run after the engine's lock is released.
type Engine struct {
	mu     sync.Mutex
	clock  Clock
	sched  Scheduler
	logger *log.Logger

	cue          func(models.Phase)
	onTransition func(Transition)

	technique  models.Technique
	deferred   *models.Technique
	session    models.Session
	phaseStart time.Time
	cycles     int

	batch  []Transition // awaiting hook dispatch
	unread []Transition // awaiting Tick
}

// New returns an idle engine configured with technique.
func New(technique models.Technique, opts ...Option) (*Engine, error) {
	if err := technique.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		clock:     SystemClock{},
		logger:    log.New(io.Discard, "", 0),
		technique: technique,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = models.Session{Technique: technique, Phase: models.PhaseInhale}
	e.phaseStart = e.clock.Now()
	return e, nil
}

// Configure selects the technique for the next activation. An invalid
// technique is rejected and the current one kept. While a session is running
// the change is held back until the next activation.
func (e *Engine) Configure(t models.Technique) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.Active {
		e.deferred = &t
		e.logger.Printf("engine: technique %q deferred until the session stops", t.ID)
		return nil
	}
	e.technique = t
	e.deferred = nil
	e.session.Technique = t
	return nil
}

// Technique returns the technique the next activation would use.
func (e *Engine) Technique() models.Technique {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deferred != nil {
		return *e.deferred
	}
	return e.technique
}

// Activate starts a session of totalSeconds at Inhale. It does nothing if a
// session is already running.
func (e *Engine) Activate(totalSeconds int) error {
	e.mu.Lock()
	if e.session.Active {
		e.mu.Unlock()
		return nil
	}
	if totalSeconds <= 0 {
		e.mu.Unlock()
		return ErrInvalidDuration
	}
	e.session.TotalSeconds = totalSeconds
	e.session.RemainingSeconds = totalSeconds
	e.start(e.clock.Now())
	e.unlockAndDispatch()
	return nil
}

// Resume restarts a stopped session with the time it had left.
func (e *Engine) Resume() error {
	e.mu.Lock()
	if e.session.Active {
		e.mu.Unlock()
		return nil
	}
	if e.session.RemainingSeconds <= 0 {
		e.mu.Unlock()
		return ErrNothingToResume
	}
	e.start(e.clock.Now())
	e.unlockAndDispatch()
	return nil
}

// Deactivate stops the session, keeping the remaining time. Calling it on a
// stopped engine has no effect.
func (e *Engine) Deactivate() {
	e.mu.Lock()
	e.stop(e.clock.Now(), Stopped)
	e.unlockAndDispatch()
}

// Reset stops the session and refills the countdown to its full length.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.stop(e.clock.Now(), Stopped)
	e.session.RemainingSeconds = e.session.TotalSeconds
	e.unlockAndDispatch()
}

// Tick fires every callback due by now and returns the transitions recorded
// since the previous Tick, including those caused by Activate or Deactivate.
func (e *Engine) Tick() []Transition {
	e.mu.Lock()
	e.sched.RunDue(e.clock.Now())
	out := e.unread
	e.unread = nil
	e.unlockAndDispatch()
	return out
}

// Active reports whether a session is running.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Active
}

// Session returns a copy of the current session.
func (e *Engine) Session() models.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Pending counts live scheduled callbacks.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Pending()
}

// Snapshot reports the state a renderer needs right now. It does not advance
// the engine; elapsed time is clamped to the current phase.
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := models.Snapshot{
		Technique:        e.session.Technique,
		Phase:            e.session.Phase,
		Running:          e.session.Active,
		TotalSeconds:     e.session.TotalSeconds,
		RemainingSeconds: e.session.RemainingSeconds,
		Cycle:            e.cycles,
		PhaseDuration:    e.session.Technique.Duration(e.session.Phase),
	}
	if s.Running {
		elapsed := e.clock.Now().Sub(e.phaseStart)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > s.PhaseDuration {
			elapsed = s.PhaseDuration
		}
		s.PhaseElapsed = elapsed
		s.Fullness = Fullness(s.Phase, elapsed, s.PhaseDuration)
	}
	s.Scale = Scale(s.Fullness)
	s.Opacity = Opacity(s.Fullness)
	return s
}

// Run advances the engine every interval until the session ends or ctx is
// done. A cancelled context stops the session and returns ctx.Err().
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		e.Tick()
		if !e.Active() {
			return nil
		}
		select {
		case <-ctx.Done():
			e.Deactivate()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// start begins a fresh activation at Inhale. Caller holds mu.
func (e *Engine) start(now time.Time) {
	if e.deferred != nil {
		e.technique = *e.deferred
		e.deferred = nil
	}
	e.sched.Cancel()
	e.cycles = 0
	e.session.Technique = e.technique
	e.session.Active = true
	e.record(Transition{Kind: Started, From: models.PhaseInhale, To: models.PhaseInhale, At: now})
	e.logger.Printf("engine: %s started, %ds", e.technique.ID, e.session.RemainingSeconds)
	e.enter(models.PhaseInhale, now)
	e.sched.Schedule(now.Add(time.Second), priorityCountdown, e.countdown)
	// Zero-length phases resolve immediately.
	e.sched.RunDue(now)
}

// stop cancels every pending callback and parks the engine at Inhale. Caller holds mu.
func (e *Engine) stop(now time.Time, kind TransitionKind) {
	e.sched.Cancel()
	wasActive := e.session.Active
	from := e.session.Phase
	e.session.Active = false
	e.session.Phase = models.PhaseInhale
	e.phaseStart = now
	e.cycles = 0
	if e.deferred != nil {
		e.technique = *e.deferred
		e.session.Technique = e.technique
		e.deferred = nil
	}
	if wasActive {
		e.record(Transition{Kind: kind, From: from, To: models.PhaseInhale, At: now})
		e.logger.Printf("engine: %s with %ds left", kind, e.session.RemainingSeconds)
	}
}

func (e *Engine) enter(p models.Phase, at time.Time) {
	e.session.Phase = p
	e.phaseStart = at
	e.sched.Schedule(at.Add(e.technique.Duration(p)), priorityPhase, e.advance)
}

func (e *Engine) advance(at time.Time) {
	from := e.session.Phase
	to := e.technique.Next(from)
	cue := from == models.PhaseExhale && to == models.PhaseInhale
	if cue {
		e.cycles++
	}
	e.record(Transition{Kind: PhaseChanged, From: from, To: to, At: at, Cue: cue})
	e.enter(to, at)
}

func (e *Engine) countdown(at time.Time) {
	e.session.RemainingSeconds--
	if e.session.RemainingSeconds <= 0 {
		e.session.RemainingSeconds = 0
		e.stop(at, Finished)
		return
	}
	e.sched.Schedule(at.Add(time.Second), priorityCountdown, e.countdown)
}

func (e *Engine) record(t Transition) {
	e.batch = append(e.batch, t)
	e.unread = append(e.unread, t)
}

// unlockAndDispatch releases mu and then runs hooks for the recorded batch.
func (e *Engine) unlockAndDispatch() {
	batch := e.batch
	e.batch = nil
	onTransition, cue := e.onTransition, e.cue
	e.mu.Unlock()

	for _, t := range batch {
		if onTransition != nil {
			onTransition(t)
		}
		if t.Cue && cue != nil {
			cue(t.To)
		}
	}
}
