package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/levels"
)

// ErrInvalidConfig is returned (wrapped) when a configuration or level cannot
// produce a playable game.
var ErrInvalidConfig = config.ErrInvalidConfig

// Engine advances game states. It holds only the immutable configuration and
// level catalog, so one engine can drive any number of independent states.
type Engine struct {
	cfg      config.Config
	catalog  *levels.Catalog
	maxAngle float64 // radians
}

// NewEngine validates the configuration and lays out every level once so that
// level transitions during play cannot fail.
func NewEngine(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	catalog, err := levels.New(cfg.Levels)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	for _, lvl := range cfg.Levels {
		if _, err := buildBricks(cfg, lvl); err != nil {
			return nil, fmt.Errorf("breakout: %w", err)
		}
	}

	return &Engine{
		cfg:      cfg,
		catalog:  catalog,
		maxAngle: cfg.Ball.MaxBounceAngle * math.Pi / 180,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Catalog returns the level catalog.
func (e *Engine) Catalog() *levels.Catalog {
	return e.catalog
}

// Initialize starts a new run on lvl: full lives, zero score, phase Ready.
func (e *Engine) Initialize(lvl config.LevelConfig) (*State, error) {
	s := &State{Lives: e.cfg.Gameplay.Lives}
	if err := e.LoadLevel(s, lvl, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel rebuilds the brick grid for lvl, recentres the paddle and puts the
// ball back at the launch point. Score and lives carry over. The state is left
// untouched if the level is invalid.
func (e *Engine) LoadLevel(s *State, lvl config.LevelConfig, cycle int) error {
	check := e.cfg
	check.Levels = []config.LevelConfig{lvl}
	if err := check.Validate(); err != nil {
		return fmt.Errorf("breakout: %w", err)
	}
	bricks, err := buildBricks(e.cfg, lvl)
	if err != nil {
		return fmt.Errorf("breakout: %w", err)
	}

	arena := e.cfg.Arena
	speed := e.ballSpeed(lvl, cycle)

	s.Level = lvl
	s.Cycle = cycle
	s.BallSpeed = speed
	s.Bricks = bricks
	s.Paddle = Paddle{
		X:     (arena.Width - e.cfg.Paddle.Width) / 2,
		Y:     arena.Height - e.cfg.Paddle.Offset,
		W:     e.cfg.Paddle.Width,
		H:     e.cfg.Paddle.Height,
		Speed: lvl.PaddleSpeed,
	}
	s.Ball = Ball{Radius: e.cfg.Ball.Radius}
	e.respawn(s)
	s.Phase = PhaseReady
	return nil
}

// Start launches play from the ready phase. It reports whether the phase changed.
func (e *Engine) Start(s *State) bool {
	if s.Phase != PhaseReady {
		return false
	}
	s.Phase = PhasePlaying
	return true
}

// Restart replays the current level from scratch after a run has ended.
// It reports whether the phase changed.
func (e *Engine) Restart(s *State) bool {
	if s.Phase != PhaseEnded {
		return false
	}
	fresh, err := e.Initialize(s.Level)
	if err != nil {
		return false
	}
	*s = *fresh
	return true
}

// Step advances a playing state by dt reference frames and returns the events
// it produced, in order. It does nothing unless the phase is Playing and dt is
// positive. Long frames are capped at the configured maximum and integrated in
// slices of at most one frame so the ball cannot skip over a brick or the paddle.
func (e *Engine) Step(s *State, in core.InputFrame, dt float64) []Event {
	if s.Phase != PhasePlaying || !(dt > 0) {
		return nil
	}
	dt = min(dt, e.cfg.Gameplay.MaxFrameDelta)
	s.Tick++

	var events []Event
	for dt > 0 && s.Phase == PhasePlaying {
		slice := min(dt, 1)
		dt -= slice
		events = e.advance(s, in, slice, events)
	}
	return events
}

// advance runs one slice of the frame pipeline.
func (e *Engine) advance(s *State, in core.InputFrame, dt float64, events []Event) []Event {
	arena := e.cfg.Arena

	s.Paddle.Move(in, dt, arena.Width)
	s.Ball.Move(dt)

	for i, n := 0, collideWalls(&s.Ball, arena.Width); i < n; i++ {
		events = append(events, e.event(s, EventHit))
	}

	if collidePaddle(&s.Ball, s.Paddle, dt, s.BallSpeed, e.maxAngle) {
		events = append(events, e.event(s, EventHit))
	}

	for _, idx := range collideBricks(&s.Ball, s.Bricks) {
		s.Score += e.cfg.Bricks.Reward
		events = append(events, e.event(s, EventSuccess))
		ev := e.event(s, EventBrickDestroyed)
		ev.Brick = idx
		events = append(events, ev)
	}

	if s.Ball.Y > arena.Height {
		s.Lives--
		events = append(events, e.event(s, EventBallLost))
		if s.Lives <= 0 {
			s.Lives = 0
			s.Phase = PhaseEnded
			return append(events, e.event(s, EventGameOver))
		}
		e.respawn(s)
	}

	if s.Remaining() == 0 {
		events = e.completeLevel(s, events)
	}
	return events
}

// completeLevel handles a cleared grid according to the game mode. A run that
// moves on to another level keeps its score and gets its lives back.
func (e *Engine) completeLevel(s *State, events []Event) []Event {
	events = append(events, e.event(s, EventLevelComplete))

	next, cycle, ok := e.nextLevel(s)
	if ok {
		if err := e.LoadLevel(s, next, cycle); err == nil {
			s.Lives = e.cfg.Gameplay.Lives
			return events
		}
	}

	s.Phase = PhaseEnded
	over := e.event(s, EventGameOver)
	over.Won = true
	return append(events, over)
}

// nextLevel picks the level that follows a cleared one.
func (e *Engine) nextLevel(s *State) (config.LevelConfig, int, bool) {
	switch e.cfg.Gameplay.Mode {
	case config.ModeCampaign:
		next, ok := e.catalog.Next(s.Level.ID)
		return next, s.Cycle, ok
	case config.ModeEndless:
		if next, ok := e.catalog.Next(s.Level.ID); ok {
			return next, s.Cycle, true
		}
		return e.catalog.First(), s.Cycle + 1, true
	default:
		return config.LevelConfig{}, 0, false
	}
}

// ballSpeed returns the target ball speed for a level on the given endless
// cycle. Growth stops short of the ball diameter.
func (e *Engine) ballSpeed(lvl config.LevelConfig, cycle int) float64 {
	speed := lvl.BallSpeed * (1 + float64(cycle)*e.cfg.Gameplay.EndlessSpeedUp)
	limit := max(lvl.BallSpeed, 1.8*e.cfg.Ball.Radius)
	return min(speed, limit)
}

// respawn puts the ball back at the launch point. The paddle stays where it is.
func (e *Engine) respawn(s *State) {
	arena := e.cfg.Arena
	s.Ball.Launch(arena.Width/2, arena.Height-e.cfg.Ball.LaunchOffset, s.BallSpeed)
}

func (e *Engine) event(s *State, kind EventKind) Event {
	return Event{
		Kind:  kind,
		Tick:  s.Tick,
		Level: s.Level.ID,
		Score: s.Score,
		Lives: s.Lives,
	}
}
