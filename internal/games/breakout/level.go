// Package breakout implements the brick breaker simulation: a paddle, one ball
// and a grid of destructible bricks advanced one frame at a time.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick is a single destructible block. Bricks are laid out once when a level
// loads; afterwards only Destroyed changes.
type Brick struct {
	Rect      core.Rect
	Row, Col  int
	Color     core.Color // cosmetic
	Destroyed bool
}

// buildBricks lays out a rows x cols grid, row-major, centred horizontally with a
// fixed row pitch. Rows too wide for the arena shrink their bricks so that at
// least the configured margin remains on each side.
func buildBricks(cfg config.Config, lvl config.LevelConfig) ([]Brick, error) {
	bc := cfg.Bricks
	if lvl.Rows <= 0 || lvl.Cols <= 0 {
		return nil, fmt.Errorf("%w: level %d has no bricks", ErrInvalidConfig, lvl.ID)
	}

	width := bc.Width
	gaps := float64(lvl.Cols-1) * bc.Padding
	if total := float64(lvl.Cols)*width + gaps; total > cfg.Arena.Width-2*bc.Margin {
		width = (cfg.Arena.Width - 2*bc.Margin - gaps) / float64(lvl.Cols)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: level %d: %d columns do not fit a %v-pixel arena", ErrInvalidConfig, lvl.ID, lvl.Cols, cfg.Arena.Width)
	}

	total := float64(lvl.Cols)*width + gaps
	startX := (cfg.Arena.Width - total) / 2

	colors := brickColors(bc.Colors)
	bricks := make([]Brick, 0, lvl.Rows*lvl.Cols)
	for row := 0; row < lvl.Rows; row++ {
		y := bc.Top + float64(row)*(bc.Height+bc.Padding)
		for col := 0; col < lvl.Cols; col++ {
			x := startX + float64(col)*(width+bc.Padding)
			bricks = append(bricks, Brick{
				Rect:  core.NewRect(x, y, width, bc.Height),
				Row:   row,
				Col:   col,
				Color: colors[row%len(colors)],
			})
		}
	}
	return bricks, nil
}

// brickColors resolves configured colour names, skipping unknown ones.
func brickColors(names []string) []core.Color {
	colors := make([]core.Color, 0, len(names))
	for _, name := range names {
		if c, ok := core.ParseColor(name); ok {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorWhite)
	}
	return colors
}

// remaining returns the number of bricks still standing.
func remaining(bricks []Brick) int {
	n := 0
	for i := range bricks {
		if !bricks[i].Destroyed {
			n++
		}
	}
	return n
}
