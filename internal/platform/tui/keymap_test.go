package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"mute is not a game action", runeKey('m'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}

	if !km.IsMute(runeKey('m')) {
		t.Error("m should toggle mute")
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestNewKeyLatchHoldTicks(t *testing.T) {
	tests := []struct {
		hold     time.Duration
		tickRate int
		want     int
	}{
		{120 * time.Millisecond, 60, 8},
		{100 * time.Millisecond, 30, 3},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
		{time.Second, 0, 60},
	}

	for _, tt := range tests {
		if got := NewKeyLatch(tt.hold, tt.tickRate).HoldTicks(); got != tt.want {
			t.Errorf("NewKeyLatch(%v, %d).HoldTicks() = %d, expected %d", tt.hold, tt.tickRate, got, tt.want)
		}
	}
}

func TestKeyLatchHoldsThenReleases(t *testing.T) {
	latch := NewKeyLatch(50*time.Millisecond, 60) // 3 ticks
	latch.Press(core.ActionLeft)

	for tick := 0; tick < 3; tick++ {
		in := core.NewInputFrame()
		latch.Sample(&in)
		if !in.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", tick)
		}
	}

	in := core.NewInputFrame()
	latch.Sample(&in)
	if in.Has(core.ActionLeft) {
		t.Error("left should be released after the hold expires")
	}
}

func TestKeyLatchRepeatExtends(t *testing.T) {
	latch := NewKeyLatch(50*time.Millisecond, 60)
	latch.Press(core.ActionRight)

	for i := 0; i < 2; i++ {
		in := core.NewInputFrame()
		latch.Sample(&in)
	}
	latch.Press(core.ActionRight) // auto-repeat

	for tick := 0; tick < 3; tick++ {
		in := core.NewInputFrame()
		latch.Sample(&in)
		if !in.Has(core.ActionRight) {
			t.Fatalf("tick %d after repeat: right should be held", tick)
		}
	}
}

func TestKeyLatchOppositeDirectionReleases(t *testing.T) {
	latch := NewKeyLatch(DefaultHold, 60)
	latch.Press(core.ActionLeft)
	latch.Press(core.ActionRight)

	if latch.Held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}

	in := core.NewInputFrame()
	latch.Sample(&in)
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("sampled %v, expected only right", in.Actions)
	}

	latch.Reset()
	if latch.Held(core.ActionRight) {
		t.Error("Reset should release everything")
	}
}
