package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// How long HUD cues and status messages stay visible.
const (
	cueTicks     = 12
	messageTicks = 120
)

// Home menu entries.
const (
	homeStart = iota
	homeLevels
	homeScores
	homeQuit
)

var homeItems = []string{"Start", "Levels", "High Scores", "Quit"}

// Model is the Bubble Tea model for one player's brickbreaker session.
// It owns the menus, pause and mute; the game session owns everything else.
type Model struct {
	game    *breakout.Game
	screen  *core.Screen
	store   *storage.Store
	player  string
	config  core.RuntimeConfig
	logger  *log.Logger
	keys    *KeyMapper
	latch   *KeyLatch
	pending core.InputFrame // one-shot actions for the next tick

	homeCursor  int
	levelCursor int
	scoreboard  *ScoreboardModel

	paused   bool
	muted    bool
	cue      string
	cueLeft  int
	message  string
	msgLeft  int
	quitting bool
}

// NewModel creates a model for the game session. The player's completed
// levels are loaded from the store when one is given. Cues start muted.
func NewModel(game *breakout.Game, store *storage.Store, player string, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.ReferenceTickRate
	}

	if store != nil {
		completed, err := store.CompletedLevels(player)
		if err != nil {
			logger.Warn("could not load level progress", "player", player, "error", err)
		}
		game.SetCompleted(completed)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		player:  player,
		config:  cfg,
		logger:  logger,
		keys:    NewKeyMapper(),
		latch:   NewKeyLatch(DefaultHold, cfg.TickRate),
		pending: core.NewInputFrame(),
		muted:   true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.scoreboard != nil {
			sb, _ := m.scoreboard.Update(msg)
			board := sb.(ScoreboardModel)
			m.scoreboard = &board
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes a key press to the scoreboard, a menu or the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.Update(msg)
		board := sb.(ScoreboardModel)
		switch {
		case board.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case board.IsGoingBack():
			m.scoreboard = nil
		default:
			m.scoreboard = &board
		}
		return m, cmd
	}

	if m.keys.IsMute(msg) {
		m.muted = !m.muted
		return m, nil
	}

	switch m.game.Phase() {
	case breakout.PhaseHome:
		return m.handleHomeKey(m.keys.MapKeyToMenuAction(msg))
	case breakout.PhaseLevelSelect:
		return m.handleLevelKey(m.keys.MapKeyToMenuAction(msg))
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionStart, core.ActionRestart:
		m.pending.Set(action)
	case core.ActionPause:
		if m.game.Phase() == breakout.PhasePlaying {
			m.paused = !m.paused
		}
	case core.ActionBack:
		// The first back while playing only pauses.
		if m.game.Phase() == breakout.PhasePlaying && !m.paused {
			m.paused = true
			return m, nil
		}
		m.leaveRun()
		m.game.GoHome()
	}

	return m, nil
}

func (m Model) handleHomeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case MenuActionDown:
		if m.homeCursor < len(homeItems)-1 {
			m.homeCursor++
		}
	case MenuActionSelect:
		switch m.homeCursor {
		case homeStart:
			if err := m.game.StartCampaign(); err != nil {
				m.setMessage(err.Error())
			}
			m.leaveRun()
		case homeLevels:
			m.game.GoLevelSelect()
			m.levelCursor = 0
		case homeScores:
			board := NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
			board.embedded = true
			m.scoreboard = &board
		case homeQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	entries := m.game.Levels()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(entries)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if m.levelCursor >= len(entries) {
			return m, nil
		}
		err := m.game.SelectLevel(entries[m.levelCursor].ID)
		if errors.Is(err, breakout.ErrLevelLocked) {
			m.setMessage(fmt.Sprintf("%s is locked: clear the level before it first", entries[m.levelCursor].Name))
			return m, nil
		}
		if err != nil {
			m.setMessage(err.Error())
			return m, nil
		}
		m.leaveRun()
	case MenuActionBack:
		m.game.GoHome()
	}
	return m, nil
}

// leaveRun drops pause and any held input when a run starts or is abandoned.
func (m *Model) leaveRun() {
	m.paused = false
	m.latch.Reset()
	m.pending.Clear()
}

// handleTick advances the game by one frame unless a menu is open or the
// game is paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.cueLeft > 0 {
		m.cueLeft--
		if m.cueLeft == 0 {
			m.cue = ""
		}
	}
	if m.msgLeft > 0 {
		m.msgLeft--
		if m.msgLeft == 0 {
			m.message = ""
		}
	}

	if m.paused || m.scoreboard != nil || m.game.Phase().InMenu() {
		m.pending.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	in := core.NewInputFrame()
	m.latch.Sample(&in)
	for a, held := range m.pending.Actions {
		if held {
			in.Set(a)
		}
	}
	m.pending.Clear()

	m.game.Update(in, m.config.FrameDelta())
	for _, ev := range m.game.DrainEvents() {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent turns engine events into cues, messages and stored progress.
func (m *Model) handleEvent(ev breakout.Event) {
	switch ev.Kind {
	case breakout.EventHit:
		m.setCue("hit")
	case breakout.EventSuccess:
		m.setCue("success")
	case breakout.EventBallLost:
		if ev.Lives > 0 {
			m.setMessage(fmt.Sprintf("Ball lost! %d lives left", ev.Lives))
		}
	case breakout.EventLevelComplete:
		m.setMessage(fmt.Sprintf("Level %d complete!", ev.Level))
		if m.store != nil {
			if err := m.store.MarkLevelCompleted(m.player, ev.Level); err != nil {
				m.logger.Warn("could not save level progress", "player", m.player, "level", ev.Level, "error", err)
			}
		}
	case breakout.EventGameOver:
		if m.store == nil {
			return
		}
		_, err := m.store.SaveScore(storage.ScoreEntry{
			Player: m.player,
			Mode:   m.game.Engine().Config().Gameplay.Mode,
			Level:  ev.Level,
			Score:  ev.Score,
			Won:    ev.Won,
		})
		if err != nil {
			m.logger.Warn("could not save score", "player", m.player, "score", ev.Score, "error", err)
		}
	}
}

func (m *Model) setCue(cue string) {
	// A success cue is not overwritten by a wall hit in the same frame.
	if m.cue == "success" && m.cueLeft == cueTicks && cue == "hit" {
		return
	}
	m.cue = cue
	m.cueLeft = cueTicks
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.msgLeft = messageTicks
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	switch m.game.Phase() {
	case breakout.PhaseHome:
		return m.viewHome()
	case breakout.PhaseLevelSelect:
		return m.viewLevels()
	}

	cue := ""
	if m.cueLeft > 0 {
		cue = m.cue
	}
	DrawGame(m.screen, m.game.Snapshot(), Overlay{
		Paused:  m.paused,
		Muted:   m.muted,
		Cue:     cue,
		Message: m.message,
	})
	return RenderScreen(m.screen)
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R I C K   B R E A K E R"), m.config.ScreenW))
	b.WriteString("\n\n")

	sub := fmt.Sprintf("player %s  |  mode %s", m.player, m.game.Engine().Config().Gameplay.Mode)
	b.WriteString(centerText(hintStyle.Render(sub), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range homeItems {
		line := "  " + item + "  "
		if i == m.homeCursor {
			line = selectedStyle.Render("> " + item + "  ")
		}
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(centerText(errorStyle.Render(m.message), m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.config.ScreenW))

	return b.String()
}

func (m Model) viewLevels() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, e := range m.game.Levels() {
		status, style := "locked", lockedStyle
		switch {
		case e.Completed:
			status, style = "cleared", doneStyle
		case e.Unlocked:
			status, style = "open", hintStyle
		}

		line := fmt.Sprintf("%d. %-8s %2dx%-2d %3d bricks  %-7s", e.ID, e.Name, e.Rows, e.Cols, e.Bricks, status)
		if i == m.levelCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(centerText(errorStyle.Render(m.message), m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString(centerText(hintStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.config.ScreenW))

	return b.String()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the session.
func Run(game *breakout.Game, store *storage.Store, player string, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, player, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
