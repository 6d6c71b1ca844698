package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/mazey/internal/core"
)

var (
	heatNear = colorful.Color{R: 0.2, G: 0.83, B: 0.2}
	heatFar  = colorful.Color{R: 0.04, G: 0.11, B: 0.04}
)

// HeatColor returns the fill colour of a cell at dist from the start.
// Cells near the start are bright green, the farthest ones nearly black.
func HeatColor(dist, maxDist int) colorful.Color {
	if dist < 0 || maxDist <= 0 {
		return heatFar
	}
	t := float64(dist) / float64(maxDist)
	if t > 1 {
		t = 1
	}
	return heatNear.BlendLab(heatFar, t).Clamped()
}

// HeatPalette returns hex colours for the core.HeatLevels steps, nearest
// first. Terminal front ends map core.Heat colours through it.
func HeatPalette() []string {
	out := make([]string, core.HeatLevels)
	for i := range out {
		out[i] = HeatColor(i, core.HeatLevels-1).Hex()
	}
	return out
}
