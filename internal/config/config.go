// Package config provides YAML-based game configuration loading, validation and
// difficulty presets for the brick breaker.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned (wrapped) when a configuration cannot produce a
// playable game.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the brick breaker.
type Config struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   []LevelConfig  `yaml:"levels"`
}

// ArenaConfig defines the playfield bounds in arena pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry. The paddle's top edge sits Offset pixels
// above the bottom of the arena.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"`
}

// BallConfig defines ball geometry and bounce behaviour.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	LaunchOffset   float64 `yaml:"launch_offset"`    // launch point height above the arena bottom
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // degrees either side of vertical
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Padding float64  `yaml:"padding"`
	Top     float64  `yaml:"top"`    // y of the first row
	Margin  float64  `yaml:"margin"` // minimum side gap when a row must shrink to fit
	Reward  int      `yaml:"reward"`
	Colors  []string `yaml:"colors"`
}

// GameplayConfig defines rules that span levels.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	Mode           string  `yaml:"mode"`             // campaign, single or endless
	EndlessSpeedUp float64 `yaml:"endless_speed_up"` // ball speed factor added per endless cycle
	MaxFrameDelta  float64 `yaml:"max_frame_delta"`  // longest step, in reference frames
}

// LevelConfig is one entry of the level table.
type LevelConfig struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
}

// Game modes.
const (
	ModeCampaign = "campaign"
	ModeSingle   = "single"
	ModeEndless  = "endless"
)

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	if !positive(c.Arena.Width) || !positive(c.Arena.Height) {
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	}
	if !positive(c.Paddle.Width) || !positive(c.Paddle.Height) {
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidConfig)
	}
	if c.Paddle.Width > c.Arena.Width {
		return fmt.Errorf("%w: paddle width %v exceeds arena width %v", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	}
	if c.Paddle.Offset < c.Paddle.Height || c.Paddle.Offset >= c.Arena.Height {
		return fmt.Errorf("%w: paddle offset %v must lie in [%v, %v)", ErrInvalidConfig, c.Paddle.Offset, c.Paddle.Height, c.Arena.Height)
	}
	if !positive(c.Ball.Radius) {
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	}
	if c.Ball.LaunchOffset <= c.Paddle.Offset || c.Ball.LaunchOffset >= c.Arena.Height {
		return fmt.Errorf("%w: ball launch offset %v must be above the paddle and inside the arena", ErrInvalidConfig, c.Ball.LaunchOffset)
	}
	if !positive(c.Ball.MaxBounceAngle) || c.Ball.MaxBounceAngle >= 90 {
		return fmt.Errorf("%w: max bounce angle must be in (0, 90) degrees, got %v", ErrInvalidConfig, c.Ball.MaxBounceAngle)
	}
	if !positive(c.Bricks.Width) || !positive(c.Bricks.Height) || c.Bricks.Padding < 0 || c.Bricks.Margin < 0 {
		return fmt.Errorf("%w: brick size must be positive and spacing non-negative", ErrInvalidConfig)
	}
	if c.Bricks.Reward <= 0 {
		return fmt.Errorf("%w: brick reward must be positive, got %d", ErrInvalidConfig, c.Bricks.Reward)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	switch c.Gameplay.Mode {
	case ModeCampaign, ModeSingle, ModeEndless:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Gameplay.Mode)
	}
	if c.Gameplay.EndlessSpeedUp < 0 || !positive(c.Gameplay.MaxFrameDelta) {
		return fmt.Errorf("%w: endless speed-up must be non-negative and max frame delta positive", ErrInvalidConfig)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalidConfig)
	}

	seen := make(map[int]bool, len(c.Levels))
	for _, lvl := range c.Levels {
		if err := c.validateLevel(lvl); err != nil {
			return err
		}
		if seen[lvl.ID] {
			return fmt.Errorf("%w: duplicate level id %d", ErrInvalidConfig, lvl.ID)
		}
		seen[lvl.ID] = true
	}
	return nil
}

// validateLevel checks a single level entry against the arena.
func (c Config) validateLevel(lvl LevelConfig) error {
	if lvl.ID <= 0 {
		return fmt.Errorf("%w: level id must be positive, got %d", ErrInvalidConfig, lvl.ID)
	}
	if lvl.Rows <= 0 || lvl.Cols <= 0 {
		return fmt.Errorf("%w: level %d has no bricks (%dx%d)", ErrInvalidConfig, lvl.ID, lvl.Rows, lvl.Cols)
	}
	if !positive(lvl.BallSpeed) || !positive(lvl.PaddleSpeed) {
		return fmt.Errorf("%w: level %d speeds must be positive", ErrInvalidConfig, lvl.ID)
	}
	if lvl.BallSpeed >= c.Ball.Radius*2 {
		return fmt.Errorf("%w: level %d ball speed %v would tunnel through a %v-pixel ball", ErrInvalidConfig, lvl.ID, lvl.BallSpeed, c.Ball.Radius*2)
	}
	bottom := c.Bricks.Top + float64(lvl.Rows)*(c.Bricks.Height+c.Bricks.Padding)
	if bottom >= c.Arena.Height-c.Ball.LaunchOffset-c.Ball.Radius {
		return fmt.Errorf("%w: level %d rows reach the launch point", ErrInvalidConfig, lvl.ID)
	}
	return nil
}

// LevelByID returns the level with the given id.
func (c Config) LevelByID(id int) (LevelConfig, bool) {
	for _, lvl := range c.Levels {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return LevelConfig{}, false
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
