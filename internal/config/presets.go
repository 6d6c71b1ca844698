package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned for preset names that are not defined.
var ErrUnknownPreset = errors.New("config: unknown preset")

// SizePreset names a maze size.
type SizePreset string

const (
	PresetTiny   SizePreset = "tiny"
	PresetSmall  SizePreset = "small"
	PresetMedium SizePreset = "medium"
	PresetLarge  SizePreset = "large"
	PresetHuge   SizePreset = "huge"
)

type presetSize struct {
	width, height, rings int
}

var presets = map[SizePreset]presetSize{
	PresetTiny:   {width: 5, height: 5, rings: 4},
	PresetSmall:  {width: 10, height: 10, rings: 8},
	PresetMedium: {width: 20, height: 20, rings: 12},
	PresetLarge:  {width: 40, height: 30, rings: 20},
	PresetHuge:   {width: 80, height: 60, rings: 32},
}

// Presets returns the preset names ordered from smallest to largest.
func Presets() []SizePreset {
	names := make([]SizePreset, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := presets[names[i]], presets[names[j]]
		return a.width*a.height < b.width*b.height
	})
	return names
}

// ApplyPreset sets the rectangular size and ring count from a preset.
// An empty preset leaves cfg unchanged. Custom start and finish points
// are dropped since they may fall outside the new size.
func ApplyPreset(cfg *Config, preset SizePreset) error {
	if preset == "" {
		return nil
	}
	size, ok := presets[preset]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	cfg.Rect.Width = size.width
	cfg.Rect.Height = size.height
	cfg.Rect.Start = nil
	cfg.Rect.Finish = nil
	cfg.Circle.Rings = size.rings
	return nil
}
