package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game session in this terminal.

Controls:
  Left/Right, A/D, H/L - Move paddle
  Space                - Launch the ball
  P                    - Pause
  M                    - Toggle sound cues
  R                    - Restart (after the game ended)
  Esc                  - Pause, then back to the menu
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - 5 lives, wider paddle, slower ball
  normal - The config as written
  hard   - 2 lives, narrower paddle, faster ball
  fixed  - Endless mode keeps the same ball speed every cycle

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --mode endless --player ann
  brickbreaker play --config ./my-levels.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name for scores and level progress")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the TUI, so logs only go to a file.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "brickbreaker"})
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	}

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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if err := tui.Run(game, store, flagPlayer, rcfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
