package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Launch direction: 0.6 horizontal, 0.8 vertical, so the magnitude is speed.
const (
	launchDX = 0.6
	launchDY = 0.8
)

// Ball is the ball state. X, Y is the centre; DX, DY are pixels per reference frame.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.RectAround(b.X, b.Y, b.Radius)
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Move advances the ball by dt reference frames.
func (b *Ball) Move(dt float64) {
	b.X += b.DX * dt
	b.Y += b.DY * dt
}

// Launch places the ball at (x, y) heading up and to the right at speed.
func (b *Ball) Launch(x, y, speed float64) {
	b.X, b.Y = x, y
	b.DX = speed * launchDX
	b.DY = -speed * launchDY
}

// Paddle is the player's paddle. X is the left edge and Y the top edge; only X moves.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // pixels per reference frame
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the horizontal centre of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Move applies left/right input for dt frames and clamps to [0, arenaW-W].
func (p *Paddle) Move(in core.InputFrame, dt, arenaW float64) {
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed * dt
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed * dt
	}
	p.X = core.ClampF(p.X, 0, arenaW-p.W)
}

// collideWalls reflects the ball off the side and top walls. A wall only
// reflects a ball moving into it, so one contact produces one hit.
// Returns the number of reflections.
func collideWalls(b *Ball, arenaW float64) int {
	hits := 0
	if b.X-b.Radius <= 0 && b.DX < 0 {
		b.X = b.Radius
		b.DX = -b.DX
		hits++
	}
	if b.X+b.Radius >= arenaW && b.DX > 0 {
		b.X = arenaW - b.Radius
		b.DX = -b.DX
		hits++
	}
	if b.Y-b.Radius <= 0 && b.DY < 0 {
		b.Y = b.Radius
		b.DY = -b.DY
		hits++
	}
	return hits
}

// collidePaddle bounces the ball off the paddle when its bottom edge has
// reached the paddle top, its centre is within the paddle span and it is
// moving down. A ball whose bottom was still above the paddle top at the start
// of the dt slice counts even if its centre has already passed the paddle.
// The new velocity depends only on where it struck.
func collidePaddle(b *Ball, p Paddle, dt, speed, maxAngle float64) bool {
	if b.DY <= 0 {
		return false
	}
	bottom := b.Y + b.Radius
	if bottom < p.Y {
		return false
	}
	crossed := bottom-b.DY*dt <= p.Y
	if b.Y > p.Y+p.H && !crossed {
		return false
	}
	if b.X < p.X || b.X > p.X+p.W {
		return false
	}

	hitPos := 0.5 + (b.X-p.CenterX())/p.W
	b.DX, b.DY = bounceVelocity(hitPos, speed, maxAngle)
	b.Y = p.Y - b.Radius
	return true
}

// bounceVelocity maps a normalised impact position (0 = left edge, 1 = right
// edge) to a velocity of the given speed. The centre sends the ball straight
// up; the edges send it off at maxAngle radians from vertical.
func bounceVelocity(hitPos, speed, maxAngle float64) (dx, dy float64) {
	hitPos = core.ClampF(hitPos, 0, 1)
	angle := (hitPos - 0.5) * 2 * maxAngle
	return speed * math.Sin(angle), -math.Abs(speed * math.Cos(angle))
}

// collideBricks destroys every standing brick the ball overlaps and reflects
// the ball along each hit's axis of least penetration. Each axis flips at most
// once per call however many bricks share it. Returns the indices destroyed.
func collideBricks(b *Ball, bricks []Brick) []int {
	box := b.Rect()
	var hit []int
	flipX, flipY := false, false

	for i := range bricks {
		brick := &bricks[i]
		if brick.Destroyed || !box.Intersects(brick.Rect) {
			continue
		}
		brick.Destroyed = true
		hit = append(hit, i)

		if axis, _ := box.MinOverlapAxis(brick.Rect); axis == core.AxisX {
			flipX = true
		} else {
			flipY = true
		}
	}

	if flipX {
		b.DX = -b.DX
	}
	if flipY {
		b.DY = -b.DY
	}
	return hit
}
