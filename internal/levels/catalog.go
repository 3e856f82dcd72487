// Package levels provides the ordered level catalog and the unlock rules that
// drive level selection. The catalog is built once from the loaded config and
// never changes afterwards.
package levels

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// ErrUnknownLevel is returned when a level id is not in the catalog.
var ErrUnknownLevel = errors.New("levels: unknown level")

// Info contains display metadata about a level.
type Info struct {
	ID     int
	Name   string
	Rows   int
	Cols   int
	Bricks int
}

// Catalog is the ordered, immutable set of playable levels.
type Catalog struct {
	levels []config.LevelConfig
	index  map[int]int
}

// New builds a catalog sorted by level id.
// Returns an error if the list is empty or an id repeats.
func New(lvls []config.LevelConfig) (*Catalog, error) {
	if len(lvls) == 0 {
		return nil, fmt.Errorf("%w: empty level list", config.ErrInvalidConfig)
	}

	sorted := make([]config.LevelConfig, len(lvls))
	copy(sorted, lvls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	c := &Catalog{levels: sorted, index: make(map[int]int, len(sorted))}
	for i, lvl := range sorted {
		if _, exists := c.index[lvl.ID]; exists {
			return nil, fmt.Errorf("%w: level %d defined twice", config.ErrInvalidConfig, lvl.ID)
		}
		c.index[lvl.ID] = i
	}
	return c, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// First returns the lowest-numbered level.
func (c *Catalog) First() config.LevelConfig {
	return c.levels[0]
}

// Get looks up a level by id.
func (c *Catalog) Get(id int) (config.LevelConfig, error) {
	i, ok := c.index[id]
	if !ok {
		return config.LevelConfig{}, fmt.Errorf("%w %d", ErrUnknownLevel, id)
	}
	return c.levels[i], nil
}

// Exists checks if a level with the given id is in the catalog.
func (c *Catalog) Exists(id int) bool {
	_, ok := c.index[id]
	return ok
}

// Next returns the level after id. The second result is false when id is the
// last level or unknown.
func (c *Catalog) Next(id int) (config.LevelConfig, bool) {
	i, ok := c.index[id]
	if !ok || i+1 >= len(c.levels) {
		return config.LevelConfig{}, false
	}
	return c.levels[i+1], true
}

// Position returns the zero-based place of id in play order, or -1.
func (c *Catalog) Position(id int) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the level at a zero-based position, wrapping around the catalog.
func (c *Catalog) At(pos int) config.LevelConfig {
	n := len(c.levels)
	return c.levels[((pos%n)+n)%n]
}

// List returns display information for every level in play order.
func (c *Catalog) List() []Info {
	result := make([]Info, 0, len(c.levels))
	for _, lvl := range c.levels {
		result = append(result, Info{
			ID:     lvl.ID,
			Name:   lvl.Name,
			Rows:   lvl.Rows,
			Cols:   lvl.Cols,
			Bricks: lvl.Rows * lvl.Cols,
		})
	}
	return result
}

// Unlocked reports whether a level may be selected given the set of completed
// level ids. The first level is always open; any other level opens once it or
// the level before it has been completed.
func (c *Catalog) Unlocked(id int, completed map[int]bool) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	if i == 0 {
		return true
	}
	return completed[id] || completed[c.levels[i-1].ID]
}

// UnlockedIDs returns every selectable level id in play order.
func (c *Catalog) UnlockedIDs(completed map[int]bool) []int {
	var ids []int
	for _, lvl := range c.levels {
		if c.Unlocked(lvl.ID, completed) {
			ids = append(ids, lvl.ID)
		}
	}
	return ids
}
