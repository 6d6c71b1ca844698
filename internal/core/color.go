package core

// Color tags a screen cell with its role. Platforms map roles to actual
// terminal colours.
type Color uint8

// Maze roles.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPath
	ColorStart
	ColorFinish
	ColorText
	ColorMuted
)

// HeatLevels is the number of distance heat steps.
const HeatLevels = 10

const colorHeatBase Color = 64

// Heat returns the colour of heat step level, clamped to [0, HeatLevels).
// Level 0 is closest to the start.
func Heat(level int) Color {
	return colorHeatBase + Color(Clamp(level, 0, HeatLevels-1))
}

// HeatLevel reports the heat step of c, if c is a heat colour.
func (c Color) HeatLevel() (int, bool) {
	if c < colorHeatBase || c >= colorHeatBase+HeatLevels {
		return 0, false
	}
	return int(c - colorHeatBase), true
}

// HeatFor maps a distance to a heat level given the maximum distance.
// Unvisited (negative) distances map to level 0.
func HeatFor(dist, maxDist int) int {
	if dist <= 0 || maxDist <= 0 {
		return 0
	}
	return Clamp(dist*(HeatLevels-1)/maxDist, 0, HeatLevels-1)
}
