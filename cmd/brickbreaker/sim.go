package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagSimFrames int
	flagSimLevel  int
	flagSimOffset float64
	flagSimRecord bool
)

// simPlayer is the player name autopilot runs are recorded under.
const simPlayer = "autopilot"

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Runs the simulation without a terminal. The autopilot launches the ball
and keeps the paddle under it until the run ends or the frame budget is spent.
Events are logged at debug level; a summary is printed at the end.

Examples:
  brickbreaker sim
  brickbreaker sim --level 3 --frames 50000
  brickbreaker sim --mode endless --debug
  brickbreaker sim --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 36000, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimLevel, "level", 0, "Starting level id (default: first level)")
	simCmd.Flags().Float64Var(&flagSimOffset, "offset", 0.2, "Autopilot aim offset as a fraction of paddle width")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the final score as player \"autopilot\"")
}

// simResult summarizes a headless run.
type simResult struct {
	Frames int
	Final  breakout.Snapshot
	Counts map[breakout.EventKind]int
	Won    bool
}

// simulate drives the game with the autopilot for at most frames ticks.
func simulate(game *breakout.Game, pilot *breakout.Autopilot, frames int, dt float64, logger *log.Logger) simResult {
	res := simResult{Counts: make(map[breakout.EventKind]int)}

	for res.Frames < frames {
		snap := game.Snapshot()
		if snap.Phase == breakout.PhaseEnded {
			break
		}
		game.Update(pilot.Input(snap), dt)
		res.Frames++

		for _, ev := range game.DrainEvents() {
			res.Counts[ev.Kind]++
			if ev.Kind == breakout.EventGameOver {
				res.Won = ev.Won
			}
			logger.Debug("event", "tick", ev.Tick, "kind", ev.Kind, "level", ev.Level, "score", ev.Score, "lives", ev.Lives)
		}
	}

	res.Final = game.Snapshot()
	return res
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger("brickbreaker-sim")

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	engine, err := breakout.NewEngine(cfg)
	if err != nil {
		return err
	}
	game, err := breakout.NewGame(engine, logger)
	if err != nil {
		return err
	}

	// Every level is open to the autopilot.
	catalog := engine.Catalog()
	all := make([]int, 0, catalog.Len())
	for _, info := range catalog.List() {
		all = append(all, info.ID)
	}
	game.SetCompleted(all)

	level := flagSimLevel
	if level == 0 {
		level = catalog.First().ID
	}
	if err := game.SelectLevel(level); err != nil {
		return err
	}

	pilot := breakout.NewAutopilot()
	pilot.Offset = flagSimOffset
	dt := core.RuntimeConfig{TickRate: flagFPS}.FrameDelta()

	res := simulate(game, pilot, flagSimFrames, dt, logger)
	final := res.Final

	fmt.Println("Simulation summary")
	fmt.Println()
	fmt.Printf("  %-16s %d\n", "Frames", res.Frames)
	fmt.Printf("  %-16s %s\n", "Mode", cfg.Gameplay.Mode)
	fmt.Printf("  %-16s %s\n", "Phase", final.Phase)
	fmt.Printf("  %-16s %d %s (cycle %d)\n", "Level", final.LevelID, final.LevelName, final.Cycle)
	fmt.Printf("  %-16s %d\n", "Score", final.Score)
	fmt.Printf("  %-16s %d/%d\n", "Lives", final.Lives, final.MaxLives)
	fmt.Printf("  %-16s %d\n", "Bricks destroyed", res.Counts[breakout.EventBrickDestroyed])
	fmt.Printf("  %-16s %d\n", "Hits", res.Counts[breakout.EventHit])
	fmt.Printf("  %-16s %d\n", "Balls lost", res.Counts[breakout.EventBallLost])
	fmt.Printf("  %-16s %d\n", "Levels cleared", res.Counts[breakout.EventLevelComplete])
	if final.Phase == breakout.PhaseEnded {
		outcome := "lost"
		if res.Won {
			outcome = "won"
		}
		fmt.Printf("  %-16s %s\n", "Result", outcome)
	}
	fmt.Printf("  %-16s %016x\n", "State hash", final.Hash())

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.SaveScore(storage.ScoreEntry{
			Player: simPlayer,
			Mode:   cfg.Gameplay.Mode,
			Level:  final.LevelID,
			Score:  final.Score,
			Won:    res.Won,
		})
		if err != nil {
			return err
		}
		logger.Info("score recorded", "id", id, "player", simPlayer, "score", final.Score)
	}
	return nil
}
