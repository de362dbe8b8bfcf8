package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTechnique is returned for a technique with negative durations or
// with neither an inhale nor an exhale.
var ErrInvalidTechnique = errors.New("invalid technique")

// Phase is one step of a breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Label is the instruction shown to the user while the phase runs.
func (p Phase) Label() string {
	switch p {
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	default:
		return "Breathe In"
	}
}

// Technique is a named timing pattern. Durations are whole seconds.
type Technique struct {
	ID     string
	Name   string
	Inhale int
	Hold   int // 0 skips the hold phase
	Exhale int
}

// Validate reports whether the technique can drive a cycle.
func (t Technique) Validate() error {
	if t.Inhale < 0 || t.Hold < 0 || t.Exhale < 0 {
		return fmt.Errorf("%w: %q has a negative duration", ErrInvalidTechnique, t.ID)
	}
	if t.Inhale == 0 && t.Exhale == 0 {
		return fmt.Errorf("%w: %q has neither inhale nor exhale", ErrInvalidTechnique, t.ID)
	}
	return nil
}

// Duration returns how long the given phase lasts.
func (t Technique) Duration(p Phase) time.Duration {
	switch p {
	case PhaseInhale:
		return time.Duration(t.Inhale) * time.Second
	case PhaseHold:
		return time.Duration(t.Hold) * time.Second
	case PhaseExhale:
		return time.Duration(t.Exhale) * time.Second
	}
	return 0
}

// Cycle is the length of one Inhale to Inhale loop.
func (t Technique) Cycle() time.Duration {
	return time.Duration(t.Inhale+t.Hold+t.Exhale) * time.Second
}

// Next returns the phase that follows p, skipping Hold when it has no length.
func (t Technique) Next(p Phase) Phase {
	switch p {
	case PhaseInhale:
		if t.Hold > 0 {
			return PhaseHold
		}
		return PhaseExhale
	case PhaseHold:
		return PhaseExhale
	default:
		return PhaseInhale
	}
}

// Pattern renders the timings as "4-7-8", or "4-6" without a hold.
func (t Technique) Pattern() string {
	if t.Hold == 0 {
		return fmt.Sprintf("%d-%d", t.Inhale, t.Exhale)
	}
	return fmt.Sprintf("%d-%d-%d", t.Inhale, t.Hold, t.Exhale)
}

// Session is one user-initiated timed practice run.
type Session struct {
	Technique        Technique
	TotalSeconds     int
	RemainingSeconds int
	Active           bool
	Phase            Phase
}

// Snapshot is the engine state a renderer needs for one frame.
type Snapshot struct {
	Technique        Technique
	Phase            Phase
	Running          bool
	TotalSeconds     int
	RemainingSeconds int
	Cycle            int // completed cycles in the current activation

	PhaseElapsed  time.Duration
	PhaseDuration time.Duration

	// Fullness is 0 at the bottom of a breath and 1 at the top.
	Fullness float64
	Scale    float64
	Opacity  float64
}

// Progress is the elapsed fraction of the session in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}
	done := s.TotalSeconds - s.RemainingSeconds
	if done <= 0 {
		return 0
	}
	return float64(done) / float64(s.TotalSeconds)
}

// Preferences are the user choices kept across runs.
type Preferences struct {
	TechniqueID    string
	SessionMinutes int
	Haptics        bool
	Reminders      bool
	DarkMode       bool
}
