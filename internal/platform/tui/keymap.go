package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// KeyMap defines the key bindings for the game and its menus.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Launch  key.Binding
	Restart key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Pause, k.Mute, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Restart},
		{k.Up, k.Down, k.Confirm, k.Back},
		{k.Pause, k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Mute is a front-end toggle and maps to ActionNone; check it with IsMute.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Launch):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// IsMute reports whether the key toggles cue feedback.
func (km *KeyMapper) IsMute(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Mute)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.keys.Up):
		return MenuActionUp
	case key.Matches(msg, km.keys.Down):
		return MenuActionDown
	case key.Matches(msg, km.keys.Confirm), key.Matches(msg, km.keys.Launch):
		return MenuActionSelect
	case key.Matches(msg, km.keys.Back):
		return MenuActionBack
	}

	return MenuActionNone
}

// DefaultHold is how long a direction stays held after its last key press.
const DefaultHold = 120 * time.Millisecond

// KeyLatch turns key presses into held actions. Terminals report presses and
// auto-repeats but never releases, so a direction stays held for a few ticks
// after each press and is released when no repeat arrives in time.
// Pressing the opposite direction releases the other one immediately.
type KeyLatch struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewKeyLatch creates a latch holding presses for hold at the given tick rate.
// Every press is held for at least one tick.
func NewKeyLatch(hold time.Duration, tickRate int) *KeyLatch {
	if tickRate <= 0 {
		tickRate = core.ReferenceTickRate
	}
	ticks := int((hold*time.Duration(tickRate) + time.Second - 1) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &KeyLatch{
		holdTicks: ticks,
		remaining: make(map[core.Action]int),
	}
}

// HoldTicks returns the number of ticks a press stays held.
func (l *KeyLatch) HoldTicks() int {
	return l.holdTicks
}

// Press holds the action for the next HoldTicks samples.
func (l *KeyLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(l.remaining, core.ActionRight)
	case core.ActionRight:
		delete(l.remaining, core.ActionLeft)
	}
	l.remaining[a] = l.holdTicks
}

// Held reports whether the action would be present in the next sample.
func (l *KeyLatch) Held(a core.Action) bool {
	return l.remaining[a] > 0
}

// Sample adds the held actions to the frame and counts one tick down.
func (l *KeyLatch) Sample(frame *core.InputFrame) {
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
}

// Reset releases everything.
func (l *KeyLatch) Reset() {
	clear(l.remaining)
}
