package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// shades go from faint to solid; opacity picks one.
var shades = []rune{'░', '▒', '▓', '█'}

// renderCircle draws a filled disc whose radius follows scale. maxRows is the
// radius in rows at the largest scale; columns are doubled because terminal
// cells are about twice as tall as they are wide.
func renderCircle(scale, opacity float64, maxRows int, color lipgloss.Color) string {
	if maxRows < 1 {
		maxRows = 1
	}
	radius := float64(maxRows) * scale / config.CircleScaleMax
	fill := shadeFor(opacity)

	var b strings.Builder
	for y := -maxRows; y <= maxRows; y++ {
		var row strings.Builder
		for x := -2 * maxRows; x <= 2*maxRows; x++ {
			dx := float64(x) / 2
			if math.Hypot(dx, float64(y)) <= radius {
				row.WriteRune(fill)
			} else {
				row.WriteByte(' ')
			}
		}
		b.WriteString(row.String())
		if y < maxRows {
			b.WriteByte('\n')
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

func shadeFor(opacity float64) rune {
	span := config.CircleOpacityMax - config.CircleOpacityMin
	frac := (opacity - config.CircleOpacityMin) / span
	idx := int(math.Round(frac * float64(len(shades)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	return shades[idx]
}
