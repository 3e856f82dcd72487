package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
}

// speedScaleForPreset returns the ball speed multiplier applied to every level.
func speedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.85
	case DifficultyHard:
		return 1.15
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched; fixed keeps ball speed constant across
// endless cycles.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.2, cfg.Arena.Width)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
	case DifficultyFixed:
		cfg.Gameplay.EndlessSpeedUp = 0
		return
	default:
		return
	}

	scale := speedScaleForPreset(preset)
	levels := make([]LevelConfig, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		lvl.BallSpeed *= scale
		levels[i] = lvl
	}
	cfg.Levels = levels
}
