// Package haptics delivers the tactile cue at the start of each breathing
// cycle. A terminal has no vibration motor, so the cue is the bell.
package haptics

import (
	"io"
	"sync"

	"github.com/akyairhashvil/breathe/internal/models"
)

// Cue is fired by the engine on Exhale→Inhale.
type Cue interface {
	Fire(p models.Phase) error
}

// Toggler is a cue that can be muted without being replaced.
type Toggler interface {
	Cue
	SetEnabled(on bool)
}

// Bell writes BEL to w. Disabled bells stay silent.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
}

func NewBell(w io.Writer, enabled bool) *Bell {
	return &Bell{w: w, enabled: enabled}
}

func (b *Bell) Fire(models.Phase) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled || b.w == nil {
		return nil
	}
	_, err := io.WriteString(b.w, "\a")
	return err
}

// SetEnabled mutes or unmutes the bell.
func (b *Bell) SetEnabled(on bool) {
	b.mu.Lock()
	b.enabled = on
	b.mu.Unlock()
}

// Nop ignores every cue.
type Nop struct{}

func (Nop) Fire(models.Phase) error { return nil }
