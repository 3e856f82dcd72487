package breakout

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/levels"
)

// ErrLevelLocked is returned when selecting a level the player has not unlocked.
var ErrLevelLocked = errors.New("breakout: level locked")

// Game is one player's session: the engine state plus the menu phases, level
// unlock progress and the queue of events waiting for collaborators.
type Game struct {
	engine    *Engine
	state     *State
	completed map[int]bool
	events    []Event
	logger    *log.Logger
}

// NewGame creates a session on the home screen with the first level loaded.
// A nil logger discards log output.
func NewGame(engine *Engine, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	state, err := engine.Initialize(engine.Catalog().First())
	if err != nil {
		return nil, err
	}
	state.Phase = PhaseHome

	return &Game{
		engine:    engine,
		state:     state,
		completed: make(map[int]bool),
		logger:    logger,
	}, nil
}

// Engine returns the engine driving this session.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Snapshot returns a read-only copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot(g.state)
}

// GoHome returns to the home screen, abandoning any run in progress.
func (g *Game) GoHome() {
	g.state.Phase = PhaseHome
}

// GoLevelSelect opens level selection, abandoning any run in progress.
func (g *Game) GoLevelSelect() {
	g.state.Phase = PhaseLevelSelect
}

// SelectLevel starts a new run on the given level.
func (g *Game) SelectLevel(id int) error {
	lvl, err := g.engine.Catalog().Get(id)
	if err != nil {
		return fmt.Errorf("breakout: %w", err)
	}
	if !g.Unlocked(id) {
		return fmt.Errorf("%w: %d", ErrLevelLocked, id)
	}

	state, err := g.engine.Initialize(lvl)
	if err != nil {
		return err
	}
	g.state = state
	g.logger.Info("level loaded", "level", lvl.ID, "name", lvl.Name, "bricks", state.Remaining())
	return nil
}

// StartCampaign starts a new run on the first level.
func (g *Game) StartCampaign() error {
	return g.SelectLevel(g.engine.Catalog().First().ID)
}

// Update applies one frame of input: Start launches from Ready, Restart
// replays after a run ended, and a playing state advances by dt reference
// frames. Events produced are queued for DrainEvents.
func (g *Game) Update(in core.InputFrame, dt float64) {
	switch g.state.Phase {
	case PhaseReady:
		if in.Has(core.ActionStart) && g.engine.Start(g.state) {
			g.logger.Debug("ball launched", "level", g.state.Level.ID)
		}
	case PhaseEnded:
		if in.Has(core.ActionRestart) && g.engine.Restart(g.state) {
			g.logger.Info("run restarted", "level", g.state.Level.ID)
		}
	case PhasePlaying:
		events := g.engine.Step(g.state, in, dt)
		for _, ev := range events {
			g.observe(ev)
		}
		g.events = append(g.events, events...)
	case PhaseHome, PhaseLevelSelect:
	}
}

// observe records progress and logs lifecycle events.
func (g *Game) observe(ev Event) {
	switch ev.Kind {
	case EventLevelComplete:
		g.completed[ev.Level] = true
		g.logger.Info("level complete", "level", ev.Level, "score", ev.Score)
		if g.state.Phase == PhaseReady {
			g.logger.Info("level loaded", "level", g.state.Level.ID, "name", g.state.Level.Name, "cycle", g.state.Cycle)
		}
	case EventGameOver:
		g.logger.Info("game over", "won", ev.Won, "score", ev.Score, "level", ev.Level)
	case EventBallLost:
		g.logger.Debug("ball lost", "lives", ev.Lives)
	}
}

// DrainEvents returns the queued events and empties the queue.
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

// SetCompleted seeds the completed-level set, typically from storage.
func (g *Game) SetCompleted(ids []int) {
	for _, id := range ids {
		g.completed[id] = true
	}
}

// Completed returns the completed level ids in ascending order.
func (g *Game) Completed() []int {
	ids := make([]int, 0, len(g.completed))
	for id := range g.completed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Unlocked reports whether the level can be selected.
func (g *Game) Unlocked(id int) bool {
	return g.engine.Catalog().Unlocked(id, g.completed)
}

// Levels returns the catalog's levels with their lock status.
func (g *Game) Levels() []LevelEntry {
	infos := g.engine.Catalog().List()
	entries := make([]LevelEntry, len(infos))
	for i, info := range infos {
		entries[i] = LevelEntry{
			Info:      info,
			Unlocked:  g.Unlocked(info.ID),
			Completed: g.completed[info.ID],
		}
	}
	return entries
}

// LevelEntry is a level as shown on the level select screen.
type LevelEntry struct {
	levels.Info
	Unlocked  bool
	Completed bool
}
