package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Arena:  ArenaConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{Width: 100, Height: 15, Offset: 40},
		Ball: BallConfig{
			Radius:         8,
			LaunchOffset:   60,
			MaxBounceAngle: 60,
		},
		Bricks: BrickConfig{
			Width:   75,
			Height:  20,
			Padding: 5,
			Top:     60,
			Margin:  10,
			Reward:  10,
			Colors:  []string{"red", "magenta", "yellow", "green", "cyan", "blue", "white", "orange"},
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			Mode:           ModeCampaign,
			EndlessSpeedUp: 0.1,
			MaxFrameDelta:  3,
		},
		Levels: []LevelConfig{
			{ID: 1, Name: "EASY", Rows: 3, Cols: 8, BallSpeed: 4, PaddleSpeed: 8},
			{ID: 2, Name: "MEDIUM", Rows: 4, Cols: 9, BallSpeed: 5, PaddleSpeed: 8},
			{ID: 3, Name: "HARD", Rows: 5, Cols: 10, BallSpeed: 6, PaddleSpeed: 7},
			{ID: 4, Name: "EXPERT", Rows: 6, Cols: 11, BallSpeed: 7, PaddleSpeed: 7},
			{ID: 5, Name: "MASTER", Rows: 7, Cols: 12, BallSpeed: 8, PaddleSpeed: 6},
			{ID: 6, Name: "LEGEND", Rows: 8, Cols: 13, BallSpeed: 9, PaddleSpeed: 6},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
