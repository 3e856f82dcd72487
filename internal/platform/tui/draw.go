package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

// Glyphs used for the arena.
const (
	brickRune  = '█'
	paddleRune = '▀'
	ballRune   = '●'
)

// Overlay carries the front-end state drawn on top of a snapshot.
type Overlay struct {
	Paused  bool
	Muted   bool
	Cue     string // last sound cue, empty when none is flashing
	Message string // transient status line
}

// arenaView maps arena pixels onto the inner area of the playfield box.
type arenaView struct {
	inner          core.Area
	arenaW, arenaH float64
}

func (v arenaView) col(x float64) int {
	c := v.inner.X + int(x/v.arenaW*float64(v.inner.W))
	return core.Clamp(c, v.inner.X, v.inner.Right()-1)
}

func (v arenaView) row(y float64) int {
	r := v.inner.Y + int(y/v.arenaH*float64(v.inner.H))
	return core.Clamp(r, v.inner.Y, v.inner.Bottom()-1)
}

// DrawGame renders a snapshot into the screen: a HUD line, the boxed arena
// and a status line at the bottom.
func DrawGame(s *core.Screen, snap breakout.Snapshot, ov Overlay) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w < 20 || h < 8 {
		s.DrawText(0, 0, "Terminal too small")
		return
	}

	drawHUD(s, snap, ov)

	box := core.Area{X: 0, Y: 1, W: w, H: h - 2}
	s.DrawBox(box)
	view := arenaView{
		inner:  core.Area{X: box.X + 1, Y: box.Y + 1, W: box.W - 2, H: box.H - 2},
		arenaW: snap.ArenaW,
		arenaH: snap.ArenaH,
	}

	for _, b := range snap.Bricks {
		if b.Destroyed {
			continue
		}
		drawBrick(s, view, b)
	}

	py := view.row(snap.PaddleY)
	for x := view.col(snap.PaddleX); x <= view.col(snap.PaddleX+snap.PaddleW-1); x++ {
		s.SetColored(x, py, paddleRune, core.ColorBrightCyan)
	}

	if snap.Phase == breakout.PhasePlaying || snap.Phase == breakout.PhaseReady {
		s.SetColored(view.col(snap.BallX), view.row(snap.BallY), ballRune, core.ColorBrightYellow)
	}

	drawBanner(s, view.inner, snap, ov)
	drawStatus(s, h-1, snap, ov)
}

func drawBrick(s *core.Screen, v arenaView, b breakout.Brick) {
	x0, x1 := v.col(b.Rect.X), v.col(b.Rect.Right())
	y0, y1 := v.row(b.Rect.Y), v.row(b.Rect.Bottom())
	// Leave the last column blank so neighbouring bricks stay distinguishable.
	if x1-x0 >= 3 {
		x1--
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	s.FillArea(core.Area{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, brickRune, b.Color)
}

func drawHUD(s *core.Screen, snap breakout.Snapshot, ov Overlay) {
	level := fmt.Sprintf("LEVEL %d %s", snap.LevelID, snap.LevelName)
	if snap.Cycle > 0 {
		level += fmt.Sprintf(" x%d", snap.Cycle+1)
	}
	s.DrawTextColored(1, 0, level, core.ColorBrightWhite)

	lives := strings.Repeat("♥", max(snap.Lives, 0)) + strings.Repeat("♡", max(snap.MaxLives-snap.Lives, 0))
	right := fmt.Sprintf("SCORE %d  BRICKS %d  %s", snap.Score, snap.BricksRemaining, lives)
	s.DrawTextColored(s.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)

	if ov.Cue != "" && !ov.Muted {
		s.DrawTextCentered(0, "♪ "+ov.Cue, core.ColorBrightMagenta)
	}
}

func drawBanner(s *core.Screen, inner core.Area, snap breakout.Snapshot, ov Overlay) {
	var lines []string
	color := core.ColorBrightWhite

	switch {
	case ov.Paused && snap.Phase == breakout.PhasePlaying:
		lines = []string{"PAUSED", "p to resume"}
	case snap.Phase == breakout.PhaseReady:
		lines = []string{fmt.Sprintf("LEVEL %d: %s", snap.LevelID, snap.LevelName), "space to launch"}
	case snap.Phase == breakout.PhaseEnded:
		title := "GAME OVER"
		color = core.ColorBrightRed
		if snap.Lives > 0 {
			title = "YOU WIN!"
			color = core.ColorBrightGreen
		}
		lines = []string{title, fmt.Sprintf("final score %d", snap.Score), "r to play again, esc for menu"}
	}

	y := inner.Y + inner.H*2/3 - len(lines)/2
	for i, line := range lines {
		x := inner.X + (inner.W-len([]rune(line)))/2
		s.DrawTextColored(x, y+i, line, color)
	}
}

func drawStatus(s *core.Screen, y int, snap breakout.Snapshot, ov Overlay) {
	status := ov.Message
	if status == "" {
		status = "←/→ move  space launch  p pause  m sound  esc menu  q quit"
	}
	s.DrawTextColored(1, y, status, core.ColorGray)

	sound := "sound off"
	if !ov.Muted {
		sound = "sound on"
	}
	s.DrawTextColored(s.Width()-len(sound)-1, y, sound, core.ColorGray)
}
