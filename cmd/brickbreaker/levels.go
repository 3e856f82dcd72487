package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/levels"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagLevelsPlayer string
	flagResetLevels  bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and unlock progress",
	Long: `Shows every level in the active config. With --player, also shows which
levels that player has cleared and which are still locked.

Examples:
  brickbreaker levels
  brickbreaker levels --player ann
  brickbreaker levels --player ann --reset`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsPlayer, "player", "", "Show progress for this player")
	levelsCmd.Flags().BoolVar(&flagResetLevels, "reset", false, "Forget the player's cleared levels")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(newLogger("brickbreaker"))
	if err != nil {
		return err
	}
	catalog, err := levels.New(cfg.Levels)
	if err != nil {
		return err
	}

	completed := make(map[int]bool)
	if flagLevelsPlayer != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if flagResetLevels {
			if err := store.ClearProgress(flagLevelsPlayer); err != nil {
				return err
			}
			fmt.Printf("Progress for %s cleared.\n\n", flagLevelsPlayer)
		}

		ids, err := store.CompletedLevels(flagLevelsPlayer)
		if err != nil {
			return err
		}
		for _, id := range ids {
			completed[id] = true
		}
	}

	fmt.Printf("Levels (%s mode):\n\n", cfg.Gameplay.Mode)

	fmt.Printf("  %-3s  %-8s  %-5s  %-6s  %-5s  %-6s", "ID", "Name", "Grid", "Bricks", "Ball", "Paddle")
	if flagLevelsPlayer != "" {
		fmt.Printf("  %s", "Status")
	}
	fmt.Println()
	fmt.Printf("  %-3s  %-8s  %-5s  %-6s  %-5s  %-6s", "--", "----", "----", "------", "----", "------")
	if flagLevelsPlayer != "" {
		fmt.Printf("  %s", "------")
	}
	fmt.Println()

	for _, info := range catalog.List() {
		lvl, _ := catalog.Get(info.ID)
		grid := fmt.Sprintf("%dx%d", info.Rows, info.Cols)
		fmt.Printf("  %-3d  %-8s  %-5s  %-6d  %-5g  %-6g", info.ID, info.Name, grid, info.Bricks, lvl.BallSpeed, lvl.PaddleSpeed)
		if flagLevelsPlayer != "" {
			fmt.Printf("  %s", levelStatus(catalog, info.ID, completed))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Run 'brickbreaker play' and pick Levels to choose one.")
	return nil
}

func levelStatus(catalog *levels.Catalog, id int, completed map[int]bool) string {
	switch {
	case completed[id]:
		return "cleared"
	case catalog.Unlocked(id, completed):
		return "open"
	default:
		return "locked"
	}
}
