package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset names a starting difficulty chosen on the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No progression at all
)

// presetLevels are the starting levels of the progressive presets.
var presetLevels = map[DifficultyPreset]float64{
	DifficultyEasy:   0.0,
	DifficultyNormal: 0.3,
	DifficultyHard:   0.7,
}

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(s))
	if _, ok := presetLevels[p]; ok || p == DifficultyFixed {
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (use easy, normal, hard or fixed)", ErrInvalidConfig, s)
}

// DifficultyManager turns progress in a run into a level between the
// configured initial level and 1.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = unit(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled switches progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// Level returns the difficulty reached with the given score after ticks.
// Without progression it stays at the initial level.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	var done int
	switch {
	case !d.cfg.Enabled:
		return d.cfg.InitialLevel
	case d.cfg.Progression.Type == "score":
		done = score
	case d.cfg.Progression.Type == "time":
		done = ticks
	default:
		return d.cfg.InitialLevel
	}

	progress := unit(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Interval shortens a base tick interval by the current level. The result
// never drops below minInterval or 1.
func (d *DifficultyManager) Interval(base, minInterval, score, ticks int) int {
	cut := int(math.Round(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReduction)))
	return max(base-cut, minInterval, 1)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
