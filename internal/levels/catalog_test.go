package levels

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(config.Default().Levels)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewSortsByID(t *testing.T) {
	c, err := New([]config.LevelConfig{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.First().Name != "A" {
		t.Errorf("First() = %q, expected A", c.First().Name)
	}
	var names []string
	for _, info := range c.List() {
		names = append(names, info.Name)
	}
	if !reflect.DeepEqual(names, []string{"A", "B", "C"}) {
		t.Errorf("List() order = %v", names)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("empty list: got %v", err)
	}
	if _, err := New([]config.LevelConfig{{ID: 1}, {ID: 1}}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("duplicate id: got %v", err)
	}
}

func TestGetAndNext(t *testing.T) {
	c := defaultCatalog(t)

	lvl, err := c.Get(2)
	if err != nil || lvl.Name != "MEDIUM" {
		t.Errorf("Get(2) = %+v, %v", lvl, err)
	}
	if _, err := c.Get(42); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Get(42) error = %v, expected ErrUnknownLevel", err)
	}

	next, ok := c.Next(5)
	if !ok || next.ID != 6 {
		t.Errorf("Next(5) = %+v, %v", next, ok)
	}
	if _, ok := c.Next(6); ok {
		t.Error("Next(last) should report no level")
	}
	if _, ok := c.Next(99); ok {
		t.Error("Next(unknown) should report no level")
	}
}

func TestPositionAndAt(t *testing.T) {
	c := defaultCatalog(t)

	if p := c.Position(1); p != 0 {
		t.Errorf("Position(1) = %d", p)
	}
	if p := c.Position(99); p != -1 {
		t.Errorf("Position(99) = %d", p)
	}
	if lvl := c.At(6); lvl.ID != 1 {
		t.Errorf("At(6) should wrap to level 1, got %d", lvl.ID)
	}
	if lvl := c.At(-1); lvl.ID != 6 {
		t.Errorf("At(-1) should wrap to level 6, got %d", lvl.ID)
	}
}

func TestListBrickCounts(t *testing.T) {
	c := defaultCatalog(t)
	want := []int{24, 36, 50, 66, 84, 104}
	for i, info := range c.List() {
		if info.Bricks != want[i] {
			t.Errorf("level %d bricks = %d, expected %d", info.ID, info.Bricks, want[i])
		}
	}
}

func TestUnlocked(t *testing.T) {
	c := defaultCatalog(t)

	tests := []struct {
		name      string
		completed map[int]bool
		want      []int
	}{
		{"fresh player", nil, []int{1}},
		{"cleared first", map[int]bool{1: true}, []int{1, 2}},
		{"gap in progress", map[int]bool{1: true, 3: true}, []int{1, 2, 3, 4}},
		{"all cleared", map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}, []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.UnlockedIDs(tc.completed)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("UnlockedIDs() = %v, expected %v", got, tc.want)
			}
		})
	}

	if c.Unlocked(42, map[int]bool{41: true}) {
		t.Error("unknown level should never be unlocked")
	}
}
