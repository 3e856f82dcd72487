package breakout

import "github.com/vovakirdan/brickbreaker/internal/config"

// State is the mutable game state. The engine owns it: collaborators read it
// through a Snapshot and never write to it.
type State struct {
	Phase     Phase
	Level     config.LevelConfig
	Cycle     int     // completed passes through the catalog (endless mode)
	Score     int     // never decreases within a run
	Lives     int     // never exceeds the starting count
	BallSpeed float64 // target speed the paddle renormalises to
	Tick      uint64  // steps taken while playing

	Paddle Paddle
	Ball   Ball
	Bricks []Brick
}

// Remaining returns the number of bricks still standing.
func (s *State) Remaining() int {
	return remaining(s.Bricks)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Bricks = make([]Brick, len(s.Bricks))
	copy(c.Bricks, s.Bricks)
	return &c
}
