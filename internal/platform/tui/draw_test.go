package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

func TestDrawGameReady(t *testing.T) {
	game := newTestGame(t)
	if err := game.StartCampaign(); err != nil {
		t.Fatalf("StartCampaign() failed: %v", err)
	}
	snap := game.Snapshot()

	s := core.NewScreen(80, 24)
	DrawGame(s, snap, Overlay{Muted: true})

	hud := s.Row(0)
	for _, want := range []string{"LEVEL 1 EASY", "SCORE 0", "BRICKS 24", "♥♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(s.String(), "space to launch") {
		t.Error("ready screen should prompt for launch")
	}
	if countRune(s, ballRune) != 1 {
		t.Errorf("expected one ball, got %d", countRune(s, ballRune))
	}
	if countRune(s, paddleRune) == 0 {
		t.Error("paddle not drawn")
	}
	if s.Get(0, 1) != '┌' || s.Get(79, 22) != '┘' {
		t.Error("arena box not drawn")
	}
	if !strings.Contains(s.Row(23), "sound off") {
		t.Error("status line should show the muted state")
	}
}

func TestDrawGameSkipsDestroyedBricks(t *testing.T) {
	game := newTestGame(t)
	game.StartCampaign()
	snap := game.Snapshot()

	s := core.NewScreen(80, 24)
	DrawGame(s, snap, Overlay{})
	full := countRune(s, brickRune)
	if full == 0 {
		t.Fatal("bricks not drawn")
	}

	for i := range snap.Bricks {
		snap.Bricks[i].Destroyed = true
	}
	DrawGame(s, snap, Overlay{})
	if got := countRune(s, brickRune); got != 0 {
		t.Errorf("destroyed bricks drawn: %d cells", got)
	}
}

func TestDrawGameBanners(t *testing.T) {
	game := newTestGame(t)
	game.StartCampaign()
	base := game.Snapshot()

	tests := []struct {
		name  string
		phase breakout.Phase
		lives int
		ov    Overlay
		want  string
	}{
		{"paused", breakout.PhasePlaying, 3, Overlay{Paused: true}, "PAUSED"},
		{"lost", breakout.PhaseEnded, 0, Overlay{}, "GAME OVER"},
		{"won", breakout.PhaseEnded, 2, Overlay{}, "YOU WIN!"},
		{"cue", breakout.PhasePlaying, 3, Overlay{Cue: "hit"}, "♪ hit"},
		{"message", breakout.PhasePlaying, 3, Overlay{Message: "Level 1 complete!"}, "Level 1 complete!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			snap.Phase = tt.phase
			snap.Lives = tt.lives
			s := core.NewScreen(80, 24)
			DrawGame(s, snap, tt.ov)
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("screen missing %q:\n%s", tt.want, s.String())
			}
		})
	}
}

func TestDrawGameMutedHidesCue(t *testing.T) {
	game := newTestGame(t)
	game.StartCampaign()

	s := core.NewScreen(80, 24)
	DrawGame(s, game.Snapshot(), Overlay{Cue: "success", Muted: true})
	if strings.Contains(s.String(), "♪") {
		t.Error("muted overlay should not show cues")
	}
}

func TestDrawGameTinyScreen(t *testing.T) {
	game := newTestGame(t)
	s := core.NewScreen(10, 4)
	DrawGame(s, game.Snapshot(), Overlay{})
	if !strings.HasPrefix(s.Row(0), "Terminal") {
		t.Errorf("row 0 = %q", s.Row(0))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
