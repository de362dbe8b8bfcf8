package engine

import (
	"math"
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
)

// Fullness is the normalized size of the breath at a point inside a phase:
// rising 0→1 over Inhale, 1 through Hold, falling 1→0 over Exhale. A phase of
// zero length reports its end value.
func Fullness(p models.Phase, elapsed, duration time.Duration) float64 {
	frac := 1.0
	if duration > 0 {
		frac = clamp01(float64(elapsed) / float64(duration))
	}
	switch p {
	case models.PhaseInhale:
		return frac
	case models.PhaseHold:
		return 1
	case models.PhaseExhale:
		return 1 - frac
	}
	return 0
}

// Scale maps fullness onto the circle's scale bounds.
func Scale(fullness float64) float64 {
	return lerp(config.CircleScaleMin, config.CircleScaleMax, clamp01(fullness))
}

// Opacity maps fullness onto the circle's opacity bounds.
func Opacity(fullness float64) float64 {
	return lerp(config.CircleOpacityMin, config.CircleOpacityMax, clamp01(fullness))
}

// EaseInOut is a sine ease for renderers that want a softer tween than the
// linear fullness value.
func EaseInOut(x float64) float64 {
	x = clamp01(x)
	return -(math.Cos(math.Pi*x) - 1) / 2
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
