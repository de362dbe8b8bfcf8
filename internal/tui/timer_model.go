package tui

import (
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/engine"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/charmbracelet/harmonica"
)

// TimerState is the home screen's view of the session lifecycle.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
	TimerFinished
)

// BreathTimer couples the engine with the frame loop and the spring that
// smooths the circle between frames.
type BreathTimer struct {
	Engine *engine.Engine
	State  TimerState

	// loopID tags frame messages; bumping it orphans any loop in flight.
	loopID   int
	interval time.Duration

	spring   harmonica.Spring
	scale    float64
	velocity float64
}

func NewBreathTimer(e *engine.Engine, interval time.Duration) BreathTimer {
	if interval <= 0 {
		interval = config.FrameInterval
	}
	fps := int(time.Second / interval)
	if fps < 1 {
		fps = 1
	}
	return BreathTimer{
		Engine:   e,
		interval: interval,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		scale:    config.CircleScaleMin,
	}
}

// Start begins a fresh session, or resumes a paused one.
func (t *BreathTimer) Start(minutes int) error {
	switch t.State {
	case TimerRunning:
		return nil
	case TimerPaused:
		if err := t.Engine.Resume(); err != nil {
			return err
		}
	default:
		if err := t.Engine.Activate(minutes * 60); err != nil {
			return err
		}
	}
	t.State = TimerRunning
	t.loopID++
	return nil
}

// Pause stops the session keeping its remaining time.
func (t *BreathTimer) Pause() {
	if t.State != TimerRunning {
		return
	}
	t.Engine.Deactivate()
	t.State = TimerPaused
	t.rest()
}

// Reset stops the session and drops any paused progress.
func (t *BreathTimer) Reset() {
	t.Engine.Reset()
	t.State = TimerIdle
	t.rest()
}

// rest snaps the circle to its starting size and ends the frame loop.
func (t *BreathTimer) rest() {
	t.loopID++
	t.scale = config.CircleScaleMin
	t.velocity = 0
}

// Frame advances the engine for a frame message. It reports whether the
// message belonged to the live loop, and the transitions it produced.
func (t *BreathTimer) Frame(id int) (bool, []engine.Transition) {
	if id != t.loopID || t.State != TimerRunning {
		return false, nil
	}
	transitions := t.Engine.Tick()
	for _, tr := range transitions {
		if tr.Kind == engine.Finished {
			t.State = TimerFinished
			t.rest()
			return true, transitions
		}
	}
	snap := t.Engine.Snapshot()
	target := engine.Scale(engine.EaseInOut(snap.Fullness))
	t.scale, t.velocity = t.spring.Update(t.scale, t.velocity, target)
	return true, transitions
}

// CircleScale is the smoothed scale the renderer draws.
func (t BreathTimer) CircleScale() float64 { return t.scale }

// CircleOpacity follows the smoothed scale back onto the opacity range.
func (t BreathTimer) CircleOpacity() float64 {
	fullness := (t.scale - config.CircleScaleMin) / (config.CircleScaleMax - config.CircleScaleMin)
	return engine.Opacity(fullness)
}

// DisplaySeconds is the countdown shown on the home screen.
func (t BreathTimer) DisplaySeconds(minutes int) int {
	switch t.State {
	case TimerRunning, TimerPaused, TimerFinished:
		return t.Engine.Session().RemainingSeconds
	}
	return minutes * 60
}

func (t BreathTimer) Running() bool { return t.State == TimerRunning }

func (t BreathTimer) Snapshot() models.Snapshot { return t.Engine.Snapshot() }
