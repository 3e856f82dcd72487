package breakout

import "math"

// Snapshot is the read-only view of a state handed to renderers, audio and
// storage after each step. It shares no memory with the state.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	LevelID   int
	LevelName string
	Cycle     int
	Score     int
	Lives     int
	MaxLives  int

	ArenaW, ArenaH float64

	PaddleX, PaddleY float64
	PaddleW, PaddleH float64

	BallX, BallY   float64
	BallDX, BallDY float64
	BallRadius     float64
	BallSpeed      float64

	Bricks          []Brick
	BricksRemaining int
}

// Snapshot returns a copy of the state for collaborators.
func (e *Engine) Snapshot(s *State) Snapshot {
	bricks := s.Clone().Bricks

	return Snapshot{
		Tick:      s.Tick,
		Phase:     s.Phase,
		LevelID:   s.Level.ID,
		LevelName: s.Level.Name,
		Cycle:     s.Cycle,
		Score:     s.Score,
		Lives:     s.Lives,
		MaxLives:  e.cfg.Gameplay.Lives,

		ArenaW: e.cfg.Arena.Width,
		ArenaH: e.cfg.Arena.Height,

		PaddleX: s.Paddle.X,
		PaddleY: s.Paddle.Y,
		PaddleW: s.Paddle.W,
		PaddleH: s.Paddle.H,

		BallX:      s.Ball.X,
		BallY:      s.Ball.Y,
		BallDX:     s.Ball.DX,
		BallDY:     s.Ball.DY,
		BallRadius: s.Ball.Radius,
		BallSpeed:  s.BallSpeed,

		Bricks:          bricks,
		BricksRemaining: remaining(bricks),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelID)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cycle)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.BallSpeed)

	for _, b := range snap.Bricks {
		if b.Destroyed {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}
	return h
}
