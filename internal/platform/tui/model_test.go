package tui

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestGame(t *testing.T) *breakout.Game {
	t.Helper()
	engine, err := breakout.NewEngine(config.Default())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	game, err := breakout.NewGame(engine, nil)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return game
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewModel(newTestGame(t), store, "ann", cfg, nil)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg{})
	}
	return m
}

func TestModelStartsOnHome(t *testing.T) {
	m := newTestModel(t, nil)

	if m.game.Phase() != breakout.PhaseHome {
		t.Fatalf("phase = %v, expected home", m.game.Phase())
	}
	if !strings.Contains(m.View(), "B R I C K") {
		t.Error("home view should show the title")
	}

	before := m.game.Snapshot()
	m = tick(m, 10)
	if m.game.Snapshot().Tick != before.Tick {
		t.Error("ticks on the home screen must not advance the game")
	}
}

func TestModelStartLaunchAndPause(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, keyEnter)
	if m.game.Phase() != breakout.PhaseReady {
		t.Fatalf("after Start, phase = %v, expected ready", m.game.Phase())
	}

	m = tick(m, 5)
	if m.game.Phase() != breakout.PhaseReady {
		t.Fatal("game should wait in ready until launched")
	}

	m = send(m, keySpace)
	m = tick(m, 1)
	if m.game.Phase() != breakout.PhasePlaying {
		t.Fatalf("after launch, phase = %v, expected playing", m.game.Phase())
	}

	m = tick(m, 3)
	started := m.game.Snapshot().Tick
	if started == 0 {
		t.Fatal("playing ticks should advance the game")
	}

	m = send(m, runeKey('p'))
	m = tick(m, 5)
	if got := m.game.Snapshot().Tick; got != started {
		t.Errorf("paused game advanced from %d to %d", started, got)
	}
	if !strings.Contains(stripView(m), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	m = send(m, runeKey('p'))
	m = tick(m, 2)
	if got := m.game.Snapshot().Tick; got != started+2 {
		t.Errorf("after resume tick = %d, expected %d", got, started+2)
	}
}

// stripView renders the model and returns the plain screen text.
func stripView(m Model) string {
	m.View()
	return m.screen.String()
}

func TestModelPaddleMovesWithLatchedKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, keyEnter, keySpace)
	m = tick(m, 1)

	x0 := m.game.Snapshot().PaddleX
	m = send(m, keyLeft)
	m = tick(m, 1)

	// EASY level paddle speed is 8 pixels per frame.
	if got := m.game.Snapshot().PaddleX; got != x0-8 {
		t.Errorf("paddle x = %v, expected %v", got, x0-8)
	}

	held := m.latch.HoldTicks()
	m = tick(m, held+5)
	x1 := m.game.Snapshot().PaddleX
	m = tick(m, 3)
	if got := m.game.Snapshot().PaddleX; got != x1 {
		t.Errorf("paddle kept moving after the latch released: %v -> %v", x1, got)
	}
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, keyEnter, keySpace)
	m = tick(m, 1)

	m = send(m, keyEsc)
	if m.game.Phase() != breakout.PhasePlaying || !m.paused {
		t.Fatalf("first esc should pause, phase = %v paused = %v", m.game.Phase(), m.paused)
	}

	m = send(m, keyEsc)
	if m.game.Phase() != breakout.PhaseHome {
		t.Errorf("second esc should return home, phase = %v", m.game.Phase())
	}
	if m.paused {
		t.Error("leaving a run should drop pause")
	}
}

func TestModelLevelSelect(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, keyDown, keyEnter)
	if m.game.Phase() != breakout.PhaseLevelSelect {
		t.Fatalf("phase = %v, expected level select", m.game.Phase())
	}
	if view := m.View(); !strings.Contains(view, "SELECT LEVEL") || !strings.Contains(view, "locked") {
		t.Error("level select view should list locked levels")
	}

	// Level 2 is locked for a fresh player.
	m = send(m, keyDown, keyEnter)
	if m.game.Phase() != breakout.PhaseLevelSelect {
		t.Fatalf("locked level started, phase = %v", m.game.Phase())
	}
	if !strings.Contains(m.message, "locked") {
		t.Errorf("message = %q, expected a locked notice", m.message)
	}

	m = send(m, keyUp, keyEnter)
	snap := m.game.Snapshot()
	if snap.Phase != breakout.PhaseReady || snap.LevelID != 1 {
		t.Errorf("selected level 1: phase %v level %d", snap.Phase, snap.LevelID)
	}

	m = send(m, keyEsc, keyEnter)
	if m.game.Phase() != breakout.PhaseLevelSelect {
		t.Fatalf("Levels from home: phase = %v", m.game.Phase())
	}
	m = send(m, keyEsc)
	if m.game.Phase() != breakout.PhaseHome {
		t.Errorf("esc from level select should go home, phase = %v", m.game.Phase())
	}
}

func TestModelMuteToggle(t *testing.T) {
	m := newTestModel(t, nil)
	if !m.muted {
		t.Fatal("cues should start muted")
	}

	m = send(m, runeKey('m'))
	if m.muted {
		t.Error("m should unmute")
	}

	m.handleEvent(breakout.Event{Kind: breakout.EventSuccess})
	m.handleEvent(breakout.Event{Kind: breakout.EventHit})
	if m.cue != "success" {
		t.Errorf("cue = %q, a wall hit in the same frame must not hide success", m.cue)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).Quitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestModelPersistsProgressAndScores(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m.handleEvent(breakout.Event{Kind: breakout.EventLevelComplete, Level: 1, Score: 240})
	m.handleEvent(breakout.Event{Kind: breakout.EventGameOver, Level: 2, Score: 310, Lives: 0})

	levels, err := store.CompletedLevels("ann")
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}
	if !reflect.DeepEqual(levels, []int{1}) {
		t.Errorf("completed levels = %v, expected [1]", levels)
	}

	scores, err := store.TopScores("ann", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 310 || scores[0].Level != 2 || scores[0].Won {
		t.Fatalf("scores = %+v", scores)
	}
	if scores[0].Mode != config.ModeCampaign {
		t.Errorf("mode = %q, expected %q", scores[0].Mode, config.ModeCampaign)
	}

	// A new session for the same player sees the unlocked level.
	again := newTestModel(t, store)
	if !again.game.Unlocked(2) {
		t.Error("level 2 should be unlocked from stored progress")
	}
	if again.game.Unlocked(3) {
		t.Error("level 3 should stay locked")
	}
}

func TestModelScoreboardFromHome(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Player: "ann", Level: 1, Score: 90}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	m := newTestModel(t, store)

	m = send(m, keyDown, keyDown, keyEnter)
	if m.scoreboard == nil {
		t.Fatal("High Scores should open the scoreboard")
	}
	if view := m.View(); !strings.Contains(view, "HIGH SCORES") || !strings.Contains(view, "90") {
		t.Error("scoreboard should list the saved score")
	}

	m = send(m, keyEsc)
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
	if m.Quitting() || m.game.Phase() != breakout.PhaseHome {
		t.Error("closing the scoreboard should return home")
	}
}

func TestPlayerName(t *testing.T) {
	if got := playerName(""); got != guestPlayer {
		t.Errorf("playerName(\"\") = %q", got)
	}
	if got := playerName("ann"); got != "ann" {
		t.Errorf("playerName(ann) = %q", got)
	}
}
