package main

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

func newSimGame(t *testing.T, mode string, lives int) *breakout.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Gameplay.Mode = mode
	cfg.Gameplay.Lives = lives
	engine, err := breakout.NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	game, err := breakout.NewGame(engine, nil)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	if err := game.StartCampaign(); err != nil {
		t.Fatalf("StartCampaign() failed: %v", err)
	}
	return game
}

func TestSimulateCountsEvents(t *testing.T) {
	game := newSimGame(t, config.ModeCampaign, 3)
	res := simulate(game, breakout.NewAutopilot(), 5000, 1, log.New(io.Discard))

	if res.Frames == 0 || res.Frames > 5000 {
		t.Fatalf("frames = %d", res.Frames)
	}
	if res.Counts[breakout.EventHit] == 0 {
		t.Error("expected wall or paddle hits")
	}
	destroyed := res.Counts[breakout.EventBrickDestroyed]
	if res.Final.Score != destroyed*config.Default().Bricks.Reward {
		t.Errorf("score %d does not match %d destroyed bricks", res.Final.Score, destroyed)
	}
	if res.Counts[breakout.EventSuccess] != destroyed {
		t.Errorf("success events %d, destroyed %d", res.Counts[breakout.EventSuccess], destroyed)
	}
}

func TestSimulateStopsWhenEnded(t *testing.T) {
	// One life and a paddle that never moves: the run ends quickly.
	game := newSimGame(t, config.ModeSingle, 1)
	idle := &breakout.Autopilot{DeadZone: math.Inf(1)}
	res := simulate(game, idle, 200000, 1, log.New(io.Discard))

	if res.Final.Phase != breakout.PhaseEnded {
		t.Fatalf("single mode run did not end, phase %v after %d frames", res.Final.Phase, res.Frames)
	}
	if res.Counts[breakout.EventGameOver] != 1 {
		t.Errorf("gameOver events = %d, expected 1", res.Counts[breakout.EventGameOver])
	}
	if res.Frames >= 200000 {
		t.Errorf("simulation ran the whole budget")
	}
	if res.Won != (res.Final.Lives > 0) {
		t.Errorf("won = %v with %d lives left", res.Won, res.Final.Lives)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := simulate(newSimGame(t, config.ModeEndless, 3), breakout.NewAutopilot(), 3000, 1, log.New(io.Discard))
	b := simulate(newSimGame(t, config.ModeEndless, 3), breakout.NewAutopilot(), 3000, 1, log.New(io.Discard))

	if a.Final.Hash() != b.Final.Hash() {
		t.Error("identical runs produced different states")
	}
}
