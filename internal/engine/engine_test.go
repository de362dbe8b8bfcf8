package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/breathe/internal/catalog"
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	t      *testing.T
	clock  *ManualClock
	engine *Engine
	cues   []models.Phase
	trace  []Transition
}

func newHarness(t *testing.T, tech models.Technique) *harness {
	t.Helper()
	h := &harness{t: t, clock: NewManualClock(epoch)}
	e, err := New(tech,
		WithClock(h.clock),
		WithCue(func(p models.Phase) { h.cues = append(h.cues, p) }),
	)
	require.NoError(t, err)
	h.engine = e
	return h
}

func builtin(t *testing.T, id string) models.Technique {
	t.Helper()
	tech, ok := catalog.Default().Lookup(id)
	require.True(t, ok, "missing technique %s", id)
	return tech
}

// step advances simulated time in small slices, ticking after each one.
func (h *harness) step(d time.Duration) {
	const slice = 250 * time.Millisecond
	for d > 0 {
		s := slice
		if d < s {
			s = d
		}
		h.clock.Advance(s)
		h.trace = append(h.trace, h.engine.Tick()...)
		d -= s
	}
}

func (h *harness) activate(total int) {
	require.NoError(h.t, h.engine.Activate(total))
	h.trace = append(h.trace, h.engine.Tick()...)
}

func offset(tr Transition) time.Duration { return tr.At.Sub(epoch) }

func phaseChanges(trace []Transition) []Transition {
	var out []Transition
	for _, tr := range trace {
		if tr.Kind == PhaseChanged {
			out = append(out, tr)
		}
	}
	return out
}

func TestNoHoldPhaseWithoutHoldSeconds(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Relaxation))
	h.activate(600)
	h.step(3 * 10 * time.Second)

	changes := phaseChanges(h.trace)
	require.NotEmpty(t, changes)
	for _, tr := range changes {
		assert.NotEqual(t, models.PhaseHold, tr.To, "entered hold at %v", offset(tr))
		assert.NotEqual(t, models.PhaseHold, tr.From)
	}
}

func TestBoxCycleTiming(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	h.activate(600)
	h.step(12 * time.Second)

	changes := phaseChanges(h.trace)
	require.Len(t, changes, 3)
	assert.Equal(t, models.PhaseHold, changes[0].To)
	assert.Equal(t, 4*time.Second, offset(changes[0]))
	assert.Equal(t, models.PhaseExhale, changes[1].To)
	assert.Equal(t, 8*time.Second, offset(changes[1]))
	assert.Equal(t, models.PhaseInhale, changes[2].To)
	assert.Equal(t, 12*time.Second, offset(changes[2]))
	assert.True(t, changes[2].Cue)
	assert.Equal(t, 1, h.engine.Snapshot().Cycle)
}

func TestCountdownEndsSessionMidCycle(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Relaxation))
	h.activate(5)

	h.step(5*time.Second - time.Millisecond)
	require.True(t, h.engine.Active())
	assert.Equal(t, 1, h.engine.Session().RemainingSeconds)

	h.step(time.Millisecond)
	assert.False(t, h.engine.Active())
	snap := h.engine.Snapshot()
	assert.Equal(t, 0, snap.RemainingSeconds)
	assert.Equal(t, models.PhaseInhale, snap.Phase)
	assert.Empty(t, h.cues, "cycle of 10s must not complete")
	assert.Zero(t, h.engine.Pending())

	last := h.trace[len(h.trace)-1]
	assert.Equal(t, Finished, last.Kind)
	assert.Equal(t, models.PhaseExhale, last.From)
	assert.Equal(t, 5*time.Second, offset(last))

	h.step(20 * time.Second)
	assert.Equal(t, Finished, h.trace[len(h.trace)-1].Kind, "nothing may fire after the session ends")
}

func TestResetReturnsToStartingPoint(t *testing.T) {
	for _, elapsed := range []time.Duration{0, 1300 * time.Millisecond, 6 * time.Second, 17*time.Second + 400*time.Millisecond} {
		h := newHarness(t, builtin(t, catalog.Calm))
		h.activate(300)
		h.step(elapsed)

		h.engine.Reset()
		snap := h.engine.Snapshot()
		assert.Equal(t, models.PhaseInhale, snap.Phase)
		assert.False(t, snap.Running)
		assert.Equal(t, 0.0, snap.Fullness)
		assert.Equal(t, config.CircleScaleMin, snap.Scale)
		assert.Equal(t, config.CircleOpacityMin, snap.Opacity)
		assert.Equal(t, 300, snap.RemainingSeconds)
		assert.Zero(t, h.engine.Pending())

		h.engine.Tick()
		mark := len(h.trace)
		h.step(60 * time.Second)
		assert.Empty(t, h.trace[mark:])
		assert.Equal(t, 300, h.engine.Session().RemainingSeconds, "countdown must not run after reset")
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	var stops int
	h.engine.onTransition = func(tr Transition) {
		if tr.Kind == Stopped {
			stops++
		}
	}
	h.activate(120)
	h.step(5 * time.Second)

	h.engine.Deactivate()
	once := h.engine.Snapshot()
	h.engine.Deactivate()
	twice := h.engine.Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, stops)
	assert.Equal(t, 115, twice.RemainingSeconds)
	assert.Zero(t, h.engine.Pending())
}

func TestCueFiresOncePerCycle(t *testing.T) {
	for _, id := range catalog.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			tech := builtin(t, id)
			h := newHarness(t, tech)
			cycle := tech.Cycle()
			total := int((10*cycle)/time.Second) + 1
			h.activate(total)
			h.step(10 * cycle)

			require.Len(t, h.cues, 10)
			for _, p := range h.cues {
				assert.Equal(t, models.PhaseInhale, p)
			}
			var cued int
			for _, tr := range phaseChanges(h.trace) {
				if tr.Cue {
					cued++
					assert.Equal(t, models.PhaseExhale, tr.From)
					assert.Equal(t, time.Duration(cued)*cycle, offset(tr))
				} else {
					assert.NotEqual(t, models.PhaseInhale, tr.To)
				}
			}
			assert.Equal(t, 10, cued)
			assert.True(t, h.engine.Active())
		})
	}
}

func TestSessionEndingOnCycleBoundarySkipsCue(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	h.activate(12)
	h.step(12 * time.Second)

	assert.False(t, h.engine.Active())
	assert.Empty(t, h.cues)
	assert.Equal(t, Finished, h.trace[len(h.trace)-1].Kind)
}

func TestConfigureRejectsInvalidTechnique(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	err := h.engine.Configure(testutil.NewTechnique().WithID("empty").WithTimings(0, 3, 0).Build())
	assert.True(t, errors.Is(err, models.ErrInvalidTechnique))
	assert.Equal(t, catalog.Box, h.engine.Technique().ID)

	_, err = New(models.Technique{ID: "zero"})
	assert.True(t, errors.Is(err, models.ErrInvalidTechnique))
}

func TestConfigureWhileActiveIsDeferred(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	h.activate(60)
	h.step(2 * time.Second)

	require.NoError(t, h.engine.Configure(builtin(t, catalog.Relaxation)))
	assert.Equal(t, catalog.Box, h.engine.Snapshot().Technique.ID)
	h.step(3 * time.Second)
	assert.Equal(t, models.PhaseHold, h.engine.Snapshot().Phase)

	h.engine.Deactivate()
	assert.Equal(t, catalog.Relaxation, h.engine.Snapshot().Technique.ID)
	h.activate(60)
	h.step(5 * time.Second)
	assert.Equal(t, models.PhaseExhale, h.engine.Snapshot().Phase)
}

func TestActivateWhileActiveIsNoop(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Relaxation))
	h.activate(60)
	h.step(3 * time.Second)
	before := h.engine.Snapshot()

	require.NoError(t, h.engine.Activate(600))
	after := h.engine.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, 60, after.TotalSeconds)
}

func TestActivateRejectsNonPositiveDuration(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Relaxation))
	assert.ErrorIs(t, h.engine.Activate(0), ErrInvalidDuration)
	assert.False(t, h.engine.Active())
}

func TestResumeKeepsRemainingTime(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Relaxation))
	assert.ErrorIs(t, h.engine.Resume(), ErrNothingToResume)

	h.activate(30)
	h.step(7 * time.Second)
	h.engine.Deactivate()
	h.step(time.Minute)

	require.NoError(t, h.engine.Resume())
	snap := h.engine.Snapshot()
	assert.True(t, snap.Running)
	assert.Equal(t, 23, snap.RemainingSeconds)
	assert.Equal(t, models.PhaseInhale, snap.Phase)

	h.step(23 * time.Second)
	assert.False(t, h.engine.Active())
	assert.ErrorIs(t, h.engine.Resume(), ErrNothingToResume)
}

func TestSnapshotDriveFollowsPhase(t *testing.T) {
	h := newHarness(t, builtin(t, catalog.Box))
	h.activate(60)

	h.step(2 * time.Second)
	snap := h.engine.Snapshot()
	assert.Equal(t, models.PhaseInhale, snap.Phase)
	assert.InDelta(t, 0.5, snap.Fullness, 1e-9)
	assert.InDelta(t, 0.95, snap.Scale, 1e-9)

	h.step(4 * time.Second)
	snap = h.engine.Snapshot()
	assert.Equal(t, models.PhaseHold, snap.Phase)
	assert.Equal(t, 1.0, snap.Fullness)
	assert.InDelta(t, config.CircleScaleMax, snap.Scale, 1e-9)
	assert.InDelta(t, config.CircleOpacityMax, snap.Opacity, 1e-9)

	h.step(3 * time.Second)
	snap = h.engine.Snapshot()
	assert.Equal(t, models.PhaseExhale, snap.Phase)
	assert.InDelta(t, 0.75, snap.Fullness, 1e-9)
}

func TestZeroLengthInhaleResolvesImmediately(t *testing.T) {
	sigh := testutil.NewTechnique().WithID("sigh").WithTimings(0, 0, 5).Build()
	h := newHarness(t, sigh)
	h.activate(60)

	assert.Equal(t, models.PhaseExhale, h.engine.Snapshot().Phase)
	h.step(5 * time.Second)
	assert.Equal(t, models.PhaseExhale, h.engine.Snapshot().Phase)
	assert.Len(t, h.cues, 1)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	e, err := New(builtin(t, catalog.Relaxation))
	require.NoError(t, err)
	require.NoError(t, e.Activate(600))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err = e.Run(ctx, 5*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, e.Active())
	assert.Zero(t, e.Pending())
}

func TestRunReturnsWhenIdle(t *testing.T) {
	e, err := New(builtin(t, catalog.Relaxation))
	require.NoError(t, err)
	assert.NoError(t, e.Run(context.Background(), time.Millisecond))
}
