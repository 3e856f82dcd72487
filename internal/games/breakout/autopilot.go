package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Autopilot produces input that plays the game: it launches from Ready and
// steers the paddle under the ball. Offset shifts the aim point as a fraction
// of the paddle width (-0.5..0.5), so the ball leaves at an angle instead of
// bouncing straight up forever. It restarts nothing; an ended run stays ended.
type Autopilot struct {
	Offset   float64
	DeadZone float64 // pixels of slack before the paddle moves
}

// NewAutopilot creates an autopilot with a slight rightward aim.
func NewAutopilot() *Autopilot {
	return &Autopilot{Offset: 0.2, DeadZone: 4}
}

// Input returns the actions to hold for the next frame.
func (a *Autopilot) Input(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	switch snap.Phase {
	case PhaseReady:
		in.Set(core.ActionStart)
	case PhasePlaying:
		target := snap.BallX - a.Offset*snap.PaddleW
		// Only chase the ball on its way down; otherwise drift back to centre.
		if snap.BallDY < 0 {
			target = snap.ArenaW / 2
		}
		diff := target - (snap.PaddleX + snap.PaddleW/2)
		if math.Abs(diff) > a.DeadZone {
			if diff > 0 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
		}
	}
	return in
}
